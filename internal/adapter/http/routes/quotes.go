package routes

import (
	"confeccao_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes        = "/quotes"
	PathPayments      = "/payments"
	PathQuoteRequests = "/quote-requests"
	PathFunctions     = "/functions"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.PaymentHandler, requestHandler *handlers.QuoteRequestHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Create)
		quotes.GET("", quoteHandler.List)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.PATCH("/:id/approve", quoteHandler.Approve)
		quotes.PATCH("/:id/reject", quoteHandler.Reject)
		quotes.PATCH("/:id/cancel", quoteHandler.Cancel)
		quotes.PATCH("/:id/price", quoteHandler.UpdatePrice)
		quotes.POST("/:id/convert", quoteHandler.Convert)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}

	requests := rg.Group(PathQuoteRequests)
	{
		requests.POST("", requestHandler.Submit)
		requests.GET("", requestHandler.List)
	}

	rg.POST(PathFunctions+"/send-quote-email", requestHandler.SendQuoteEmail)
}
