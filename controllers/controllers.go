package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"inventoryapi/models"
	"inventoryapi/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

var (
	productsCacheKey = "products"
	productsCacheTTL = 5 * time.Minute

	s1 = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1,
			"color": ["#96b753"]
		},
		"font": {
			"bold": true
		},
		"alignment": {
			"shrink_to_fit": true,
			"horizontal": "center"
		}
	}
	`
	s2 = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1
		},
		"alignment": {
			"shrink_to_fit": true
		}
	}
	`
)

type API struct {
	Db        *sql.DB
	Redis     *redis.Client
	Products  *repository.ProductRepository
	Customers *repository.CustomerRepository
}

func NewAPI() *API {
	return &API{}
}

// SetDB wires the database into the API and its repositories.
func (api *API) SetDB(db *sql.DB) {
	api.Db = db
	api.Products = repository.NewProductRepository(db)
	api.Customers = repository.NewCustomerRepository(db)
}

// abortError records the failure for the error boundary and stops the
// chain; the middleware owns the response body.
func abortError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// cachedProducts reads the product list through the redis cache.
// Cache failures other than a miss fall back to the store so a dead
// redis never takes the list endpoint down.
func (api *API) cachedProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := api.Redis.Get(ctx, productsCacheKey).Result()
	if err == nil {
		var products []models.Product
		if err := json.Unmarshal([]byte(raw), &products); err == nil {
			return products, nil
		}
		log.Println("discarding unreadable products cache entry")
	} else if err != redis.Nil {
		log.Println(err)
	}

	products, err := api.Products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		if err := api.Redis.Set(ctx, productsCacheKey, data, productsCacheTTL).Err(); err != nil {
			log.Println(err)
		}
	}

	return products, nil
}

// invalidateProducts marks the cached list stale after a successful
// mutation; the next read refetches from the store.
func (api *API) invalidateProducts(ctx context.Context) {
	if err := api.Redis.Del(ctx, productsCacheKey).Err(); err != nil {
		log.Println(err)
	}
}
