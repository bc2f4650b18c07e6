package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-backend/internal/domain"
	productrepo "storefront-backend/internal/repository/product"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := productrepo.ListFilter{
			Collection: c.Query("collection"),
			Size:       c.Query("size"),
			Color:      c.Query("color"),
		}
		if v := c.Query("minPrice"); v != "" {
			if cents, err := strconv.ParseInt(v, 10, 64); err == nil {
				f.MinPriceCents = cents
			}
		}
		if v := c.Query("maxPrice"); v != "" {
			if cents, err := strconv.ParseInt(v, 10, 64); err == nil {
				f.MaxPriceCents = cents
			}
		}
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				f.Limit = n
			}
		}

		products, err := svc.List(c.Request.Context(), f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		created, err := svc.Create(c.Request.Context(), p)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Product with this SKU already exists"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		p.ID = c.Param("id")
		updated, err := svc.Update(c.Request.Context(), p)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			case errors.Is(err, domain.ErrAlreadyExists):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Product with this SKU already exists"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
	}
}
