package services

import (
	portsrepo "github.com/shiftbook/shift_cash_app/internal/core/ports/repositories"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the owner ledger first since shift, expense and vendor
	// services all mirror entries into it.
	container.OwnerLedger = NewOwnerLedgerService(repos.OwnerLedgerRepo)

	// The shift service doubles as the reconciler the others recompute through.
	container.Shift = NewShiftService(
		repos.ShiftRepo,
		repos.ExpenseRepo,
		repos.VendorRepo,
		container.OwnerLedger,
	)
	reconciler := container.Shift.(portssvc.ShiftReconcilerSvc)

	container.Expense = NewExpenseService(repos.ExpenseRepo, reconciler, container.OwnerLedger)
	container.Vendor = NewVendorService(repos.VendorRepo, reconciler, container.OwnerLedger)
	container.Reporting = NewReportingService(repos.ShiftRepo, repos.ExpenseRepo, repos.VendorRepo)

	return container
}
