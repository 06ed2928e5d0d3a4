package routers

import (
	"database/sql"
	"log"
	"os"
	"time"

	"inventoryapi/controllers"
	"inventoryapi/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
)

func Route() *gin.Engine {
	router := gin.Default()
	router.Use(CORS())
	router.Use(middlewares.Errors(os.Getenv("APP_ENV")))

	api := controllers.NewAPI()

	db := newDB(nil)
	db.SetConnMaxLifetime(5 * time.Minute)
	api.SetDB(db)

	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")

	api.Redis = redis.NewClient(&redis.Options{
		Addr: redisHost + ":" + redisPort,
		DB:   0,
	})

	products := router.Group("/api/Products")
	{
		products.GET("", api.GetProducts)
		products.GET("/:id", api.GetProduct)
		products.GET("/category/:category", api.GetProductsByCategory)
		products.POST("", api.CreateProduct)
		products.PUT("/:id", api.UpdateProduct)
		products.DELETE("/:id", api.DeleteProduct)
	}

	customers := router.Group("/api/Customers")
	{
		customers.GET("/top", api.GetTopCustomers)
	}

	return router
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func newDB(indb *sql.DB) *sql.DB {
	if indb != nil {
		return indb
	}
	connString := os.Getenv("DB_CONNECTION_STRING")
	if connString == "" {
		log.Fatal("Please provide DB_CONNECTION_STRING environment variable")
	}

	var err error
	conn, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatalf("Cannot connect to db with connection %s: %v", connString, err)
	}

	err = conn.Ping()
	if err != nil {
		log.Fatal(err)
	}

	return conn
}
