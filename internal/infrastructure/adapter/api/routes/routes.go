package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Wallet   *handler.WalletHandler
	Callback *handler.CallbackHandler
	Account  *handler.AccountHandler
	Admin    *handler.AdminHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, adminAPIKey string, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)

	accounts := router.Group("/accounts/:accountId")
	{
		accounts.GET("/balance", h.Account.GetBalance)
		accounts.GET("/summary", h.Account.GetSummary)
		accounts.GET("/transactions", h.Wallet.ListTransactions)
		accounts.POST("/cash-in", h.Wallet.CashIn)
		accounts.POST("/cash-in/cancel", h.Wallet.CancelCashIn)
		accounts.POST("/withdrawals", h.Wallet.RequestWithdrawal)
	}

	// Provider redirects, e.g. GET /payments/paypal/success?paymentId=&PayerID=
	router.GET("/payments/:method/success", h.Callback.PaymentSuccess)

	admin := router.Group("/admin/withdrawals", middleware.AdminAuth(adminAPIKey, logger))
	{
		admin.GET("/pending", h.Admin.ListPendingWithdrawals)
		admin.POST("/approve", h.Admin.ApproveWithdrawals)
		admin.POST("/reject", h.Admin.RejectWithdrawals)
		admin.POST("/:transactionId/approve", h.Admin.ApproveWithdrawal)
		admin.POST("/:transactionId/reject", h.Admin.RejectWithdrawal)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
