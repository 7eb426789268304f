package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Routes is implemented by the handlers package; declared here to keep
// the router free of a handlers import cycle.
type Routes interface {
	AddBankDebit(c *gin.Context)
	AddCardDebit(c *gin.Context)
	AddPayment(c *gin.Context)
	GetCustomer(c *gin.Context)
	ClearSchedule(c *gin.Context)
	EditBankAccount(c *gin.Context)
	EditCreditCard(c *gin.Context)
}

func NewRouter(h Routes, middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middlewares...)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/debits/bank", h.AddBankDebit)
		v1.POST("/debits/card", h.AddCardDebit)
		v1.POST("/payments", h.AddPayment)
		v1.GET("/customers/:id", h.GetCustomer)
		v1.DELETE("/customers/:id/schedule", h.ClearSchedule)
		v1.PUT("/customers/:id/bank-account", h.EditBankAccount)
		v1.PUT("/customers/:id/credit-card", h.EditCreditCard)
	}

	return router
}
