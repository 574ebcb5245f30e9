package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"naijakart/internal/auth"
	"naijakart/internal/cart"
	"naijakart/internal/catalog"
	"naijakart/internal/checkout"
	"naijakart/internal/config"
	"naijakart/internal/database"
	"naijakart/internal/events"
	"naijakart/internal/handlers"
	"naijakart/internal/middleware"
	"naijakart/internal/notify"
	"naijakart/internal/orders"
	"naijakart/internal/payment"
	"naijakart/internal/store"
)

func main() {
	config.Load()

	kv, cleanup, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	var publisher events.Publisher = events.Nop{}
	if config.AppEnv.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQP(config.AppEnv.AMQPURL, config.AppEnv.OrderExchange)
		if err != nil {
			log.Fatal("AMQP connection failed:", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Println("order events publishing to exchange:", config.AppEnv.OrderExchange)
	}

	products := catalog.NewStatic()
	carts := cart.NewService(kv, products)
	history := orders.NewHistory(kv)
	gateway := payment.NewSimulator(config.AppEnv.PaymentDelay)
	sink := notify.LogSink{}
	manager := checkout.NewManager(carts, history, gateway, publisher, sink)
	authSvc := auth.NewService(kv, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL)

	r := gin.Default()
	r.Use(middleware.Prometheus())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", handlers.GetProducts(products))
	r.GET("/categories", handlers.GetCategories(products))

	r.POST("/auth/register", handlers.Register(authSvc))
	r.POST("/auth/login", handlers.Login(authSvc))
	r.GET("/auth/me", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMe(authSvc))

	user := r.Group("/")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.GET("/cart", handlers.GetCart(carts))
		user.POST("/cart/items", handlers.AddCartItem(carts))
		user.PUT("/cart/items/:id", handlers.UpdateCartItem(carts))
		user.DELETE("/cart/items/:id", handlers.RemoveCartItem(carts))

		user.POST("/checkout", handlers.StartCheckout(manager))
		user.PUT("/checkout/shipping", handlers.SubmitShipping(manager))
		user.POST("/checkout/back", handlers.EditShipping(manager))
		user.POST("/checkout/confirm", handlers.ConfirmPayment(manager))
		user.DELETE("/checkout", handlers.AbortCheckout(manager))

		user.GET("/orders", handlers.GetOrders(history))
	}

	log.Println("storefront listening on port", config.AppEnv.Port)
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}

func openStore() (store.KV, func(), error) {
	switch config.AppEnv.StoreBackend {
	case "redis":
		redisStore, err := store.NewRedis(
			config.AppEnv.RedisAddr,
			config.AppEnv.RedisPassword,
			config.AppEnv.RedisDB,
		)
		if err != nil {
			return nil, nil, err
		}
		log.Println("redis store connected to:", config.AppEnv.RedisAddr)
		return redisStore, func() { _ = redisStore.Close() }, nil

	case "mongo":
		client, err := database.Connect(config.AppEnv.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(config.AppEnv.DBName)
		log.Println("MongoDB connected to:", db.Name())
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return store.NewMongo(db, "kv"), cleanup, nil

	default:
		log.Println("using in-memory store; state is lost on restart")
		return store.NewMemory(), nil, nil
	}
}
