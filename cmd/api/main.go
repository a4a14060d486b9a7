package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tallerok/taller-api/internal/application/audit"
	"github.com/tallerok/taller-api/internal/application/auth"
	"github.com/tallerok/taller-api/internal/application/billing"
	"github.com/tallerok/taller-api/internal/application/checklist"
	"github.com/tallerok/taller-api/internal/application/expenses"
	"github.com/tallerok/taller-api/internal/application/finance"
	"github.com/tallerok/taller-api/internal/application/orders"
	"github.com/tallerok/taller-api/internal/application/usecase"
	infrapdf "github.com/tallerok/taller-api/internal/infrastructure/pdf"
	"github.com/tallerok/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/tallerok/taller-api/internal/interfaces/http"
	"github.com/tallerok/taller-api/pkg/config"
	"github.com/tallerok/taller-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Zona horaria de los reportes de caja: define el corte de día y de mes.
	reportLoc, err := time.LoadLocation(cfg.Taller.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Taller.Timezone).Msg("zona horaria inválida")
	}

	clientRepo := postgres.NewClientRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	orderRepo := postgres.NewWorkOrderRepository(pool)
	itemRepo := postgres.NewOrderItemRepository(pool)
	checklistRepo := postgres.NewChecklistRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)

	auditRecorder := audit.NewRecorder(auditRepo, log.WithComponent("audit"))

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auditRecorder)
	clientUC := usecase.NewClientUseCase(clientRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, clientRepo)
	orderUC := orders.NewUseCase(orderRepo, itemRepo, vehicleRepo, auditRecorder)
	checklistUC := checklist.NewUseCase(checklistRepo, orderRepo)
	expenseUC := expenses.NewUseCase(expenseRepo, auditRecorder)
	financeUC := finance.NewUseCase(orderRepo, expenseRepo, reportLoc)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo)

	// PDF: presupuesto imprimible de la orden para entregar al cliente
	budgetGenerator := infrapdf.NewMarotoBudgetGenerator()
	budgetPDFUC := billing.NewPDFUseCase(
		orderRepo, itemRepo, vehicleRepo, clientRepo,
		budgetGenerator, billing.TallerInfo{
			Nombre:    cfg.Taller.Nombre,
			Direccion: cfg.Taller.Direccion,
			Telefono:  cfg.Taller.Telefono,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	mountSwagger(app, "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      clientUC,
		VehicleUC:     vehicleUC,
		OrderUC:       orderUC,
		ChecklistUC:   checklistUC,
		BudgetPDF:     budgetPDFUC,
		ExpenseUC:     expenseUC,
		FinanceUC:     financeUC,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		AppointmentUC: appointmentUC,
		AuditRecorder: auditRecorder,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// mountSwagger registra la UI de docs solo si swagger.json está presente.
// El middleware entra en pánico cuando el archivo falta, y un deploy sin
// docs tiene que poder levantar igual.
func mountSwagger(app *fiber.App, filePath string, log *logger.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("path", filePath).Msg("swagger.json no encontrado, UI de docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Taller API",
	}))
}
