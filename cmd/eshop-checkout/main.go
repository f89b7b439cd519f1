package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/eshop-checkout/docs"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/handlers"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/cache"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/config"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/events"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/health"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	service "github.com/aaravmahajanofficial/eshop-checkout/internal/services"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/tracing"
	"github.com/aaravmahajanofficial/eshop-checkout/pkg/sendGrid"
	"github.com/aaravmahajanofficial/eshop-checkout/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

//	@title						eshop checkout API
//	@version					1.0
//	@description				Carts, checkout and orders for the e-shop storefront.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Init(context.Background(), cfg.Otel, cfg.Env)
	if err != nil {
		slog.Warn("⚠️ Tracing disabled", slog.String("error", err.Error()))
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	appCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	claims := repository.NewClaimRepo(redisClient)

	publisher := events.NewPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("⚠️ Error closing event publisher", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimiter, jwtKey, tokenTTL)
	cartService := service.NewCartService(repos.Cart, repos.Product, repos.Coupon, appCache, cfg.Cache.DefaultTTL)
	notificationService := service.NewNotificationService(repos.Notification, sendGridClient, cfg.SendGrid.AdminEmail)
	checkoutService := service.NewCheckoutService(service.CheckoutDeps{
		Carts:         repos.Cart,
		Orders:        repos.Order,
		Users:         repos.User,
		Payments:      repos.Payment,
		Checkout:      repos.Checkout,
		Claims:        claims,
		Gateway:       stripeClient,
		Notifications: notificationService,
		Events:        publisher,
	}, cfg.Checkout, cfg.Stripe)
	orderService := service.NewOrderService(repos.Order)
	rankingService := service.NewRankingService(repos.Inventory, appCache)

	assets := handlers.NewAssetPresenter(cfg.App.AssetBaseURL)
	userHandler := handlers.NewUserHandler(userService)
	cartHandler := handlers.NewCartHandler(cartService, assets)
	orderHandler := handlers.NewOrderHandler(orderService, checkoutService)
	webhookHandler := handlers.NewWebhookHandler(checkoutService)
	rankingHandler := handlers.NewRankingHandler(rankingService, assets)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Payments: stripeClient, Version: version})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	originResolver, err := middleware.NewOriginResolver(cfg.TrustedProxies)
	if err != nil {
		slog.Error("❌ Invalid trusted proxy configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	adminOnly := func(next http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireRole(models.RoleAdmin, next))
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("POST /api/v1/cart", authMiddleware.OptionalAuth(cartHandler.AddItem()))
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.OptionalAuth(cartHandler.GetCart()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.OptionalAuth(cartHandler.ClearCart()))
	routerMux.HandleFunc("PUT /api/v1/cart/applyCoupon", authMiddleware.OptionalAuth(cartHandler.ApplyCoupon()))
	routerMux.HandleFunc("POST /api/v1/cart/mergeGuestCart", authMiddleware.Authenticate(cartHandler.MergeGuestCart()))
	routerMux.HandleFunc("PUT /api/v1/cart/{itemId}", authMiddleware.OptionalAuth(cartHandler.UpdateItemQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/{itemId}", authMiddleware.OptionalAuth(cartHandler.RemoveItem()))

	routerMux.HandleFunc("POST /api/v1/orders/{cartId}", authMiddleware.OptionalAuth(orderHandler.CreateCashOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/checkout-session/{cartId}", authMiddleware.Authenticate(orderHandler.CheckoutSession()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PUT /api/v1/orders/{id}/pay", adminOnly(orderHandler.MarkPaid()))
	routerMux.HandleFunc("PUT /api/v1/orders/{id}/deliver", adminOnly(orderHandler.MarkDelivered()))
	routerMux.HandleFunc("POST /api/v1/webhook-checkout", webhookHandler.HandleCheckoutWebhook())

	routerMux.HandleFunc("GET /api/v1/bestsellers/ordered", rankingHandler.TopOrdered())

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining; metrics reads the matched pattern so it wraps the mux directly
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = originResolver.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "eshop-checkout")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}
}
