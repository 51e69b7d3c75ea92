// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-questor/backend/config"
	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/application/usecase/advisor"
	"github.com/budget-questor/backend/internal/application/usecase/auth"
	"github.com/budget-questor/backend/internal/application/usecase/budget"
	"github.com/budget-questor/backend/internal/application/usecase/dashboard"
	"github.com/budget-questor/backend/internal/application/usecase/expense"
	"github.com/budget-questor/backend/internal/application/usecase/period"
	"github.com/budget-questor/backend/internal/infra/server/router"
	"github.com/budget-questor/backend/internal/integration/adapters"
	"github.com/budget-questor/backend/internal/integration/email"
	"github.com/budget-questor/backend/internal/integration/entrypoint/controller"
	"github.com/budget-questor/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-questor/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	periodRepo := persistence.NewPeriodRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	adviceService := adapters.NewOpenAIService(&cfg.Advisor)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create period and expense use cases
	resolvePeriodUseCase := period.NewResolveActivePeriodUseCase(periodRepo)
	addExpenseUseCase := expense.NewAddExpenseUseCase(resolvePeriodUseCase, expenseRepo, periodRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(resolvePeriodUseCase, expenseRepo)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)

	// Create dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(resolvePeriodUseCase, expenseRepo, budgetRepo)
	getSpendingHistoryUseCase := dashboard.NewGetSpendingHistoryUseCase(periodRepo, expenseRepo)
	getInvestmentOverviewUseCase := dashboard.NewGetInvestmentOverviewUseCase(budgetRepo, periodRepo)

	// Create advisor use case
	askAdvisorUseCase := advisor.NewAskAdvisorUseCase(adviceService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	expenseController := controller.NewExpenseController(
		addExpenseUseCase,
		listExpensesUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		getBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getDashboardUseCase,
		getSpendingHistoryUseCase,
		getInvestmentOverviewUseCase,
	)

	advisorController := controller.NewAdvisorController(askAdvisorUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		budgetController,
		dashboardController,
		advisorController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
