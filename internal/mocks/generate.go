package mocks

//go:generate mockery --name PurchaseStore --srcpkg github.com/aevon-lab/grocery-tracker/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Analyzer --srcpkg github.com/aevon-lab/grocery-tracker/internal/receipt --output ./receipt --outpkg receiptmocks --with-expecter
