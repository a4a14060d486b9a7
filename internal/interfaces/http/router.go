package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerok/taller-api/internal/application/audit"
	"github.com/tallerok/taller-api/internal/application/auth"
	"github.com/tallerok/taller-api/internal/application/billing"
	"github.com/tallerok/taller-api/internal/application/checklist"
	"github.com/tallerok/taller-api/internal/application/expenses"
	"github.com/tallerok/taller-api/internal/application/finance"
	"github.com/tallerok/taller-api/internal/application/orders"
	"github.com/tallerok/taller-api/internal/application/usecase"
	"github.com/tallerok/taller-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	ClientUC      *usecase.ClientUseCase
	VehicleUC     *usecase.VehicleUseCase
	OrderUC       *orders.UseCase
	ChecklistUC   *checklist.UseCase
	BudgetPDF     *billing.PDFUseCase
	ExpenseUC     *expenses.UseCase
	FinanceUC     *finance.UseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	AppointmentUC *usecase.AppointmentUseCase
	AuditRecorder *audit.Recorder
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes y vehículos
	clientHandler := NewClientHandler(deps.ClientUC)
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	clients := protected.Group("/clients")
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/vehicles", vehicleHandler.ListByClient)
	vehicles := protected.Group("/vehicles")
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Órdenes de trabajo
	orderHandler := NewOrderHandler(deps.OrderUC, deps.BudgetPDF)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.ListActivas)
	ordersGroup.Get("/finalizadas", orderHandler.ListFinalizadas)
	ordersGroup.Delete("/items/:itemId", orderHandler.DeleteItem)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Post("/:id/items", orderHandler.AddItem)
	ordersGroup.Get("/:id/items", orderHandler.ListItems)
	ordersGroup.Get("/:id/presupuesto.pdf", orderHandler.Presupuesto)

	// Chequeo de inspección (una fila por orden)
	checklistHandler := NewChecklistHandler(deps.ChecklistUC)
	ordersGroup.Get("/:id/checklist", checklistHandler.GetByOrder)
	ordersGroup.Put("/:id/checklist", checklistHandler.Save)

	// Gastos de caja
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expensesGroup := protected.Group("/expenses")
	expensesGroup.Post("/", expenseHandler.Create)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Patch("/:id/approval", expenseHandler.Approve)
	expensesGroup.Delete("/:id", expenseHandler.Delete)

	// Conciliación de caja
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	protected.Get("/finance/feed", financeHandler.Feed)

	// Inventario de repuestos
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Patch("/:id/stock", productHandler.AdjustStock)
	products.Delete("/:id", productHandler.Delete)

	// Proveedores
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Agenda de turnos
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments := protected.Group("/appointments")
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Gestión de empleados y auditoría (solo admin)
	admin := protected.Group("/", RequireRole(domain.RoleAdmin))
	users := admin.Group("/users")
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)
	users.Delete("/:id", authHandler.DeleteUser)
	auditHandler := NewAuditHandler(deps.AuditRecorder)
	admin.Get("/audit-logs", auditHandler.List)
}
