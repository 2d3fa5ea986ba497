package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/cafe-orders/internal/apperr"
	"github.com/MikeMC777/cafe-orders/internal/httpx"
	"github.com/MikeMC777/cafe-orders/internal/order"
	"github.com/MikeMC777/cafe-orders/internal/qr"
)

const qrSize = 256

type orderResponse struct {
	Order *order.View `json:"order"`
}

type ordersResponse struct {
	Orders []order.View `json:"orders"`
}

// scanRequest carries the text read by the staff's scanner.
type scanRequest struct {
	Payload string `json:"payload"`
}

func writeOrders(c *gin.Context, out []order.View) {
	if out == nil {
		out = []order.View{}
	}
	c.JSON(http.StatusOK, ordersResponse{Orders: out})
}

// listOrdersHandler godoc
// @Summary      List orders visible to the caller
// @Tags         orders
// @Produce      json
// @Param        scope  query     string  false  "mine"
// @Success      200    {object}  ordersResponse
// @Failure      401    {object}  httpx.HTTPError
// @Router       /orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context(), httpx.Principal(c), c.Query("scope"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		writeOrders(c, out)
	}
}

// createOrderHandler godoc
// @Summary      Place an order (customer)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      order.CreateOrderRequest  true  "lines"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      401   {object}  httpx.HTTPError
// @Failure      403   {object}  httpx.HTTPError
// @Router       /orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		v, err := svc.Create(c.Request.Context(), httpx.Principal(c), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orderResponse{Order: v})
	}
}

// getOrderHandler godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "order id"
// @Success      200  {object}  orderResponse
// @Failure      401  {object}  httpx.HTTPError
// @Failure      403  {object}  httpx.HTTPError
// @Failure      404  {object}  httpx.HTTPError
// @Router       /orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := svc.Get(c.Request.Context(), httpx.Principal(c), c.Param("id"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orderResponse{Order: v})
	}
}

// advanceStatusHandler godoc
// @Summary      Change order status (staff)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "order id"
// @Param        body  body      order.AdvanceStatusRequest  true  "target status"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      403   {object}  httpx.HTTPError
// @Failure      404   {object}  httpx.HTTPError
// @Failure      409   {object}  httpx.HTTPError
// @Router       /orders/{id} [patch]
func advanceStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.AdvanceStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		v, err := svc.AdvanceStatus(c.Request.Context(), httpx.Principal(c), c.Param("id"), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orderResponse{Order: v})
	}
}

// orderQRHandler godoc
// @Summary      QR code of the order id
// @Tags         orders
// @Produce      png
// @Produce      json
// @Param        id      path   string  true   "order id"
// @Param        format  query  string  false  "png or dataurl"
// @Success      200
// @Failure      401  {object}  httpx.HTTPError
// @Failure      403  {object}  httpx.HTTPError
// @Failure      404  {object}  httpx.HTTPError
// @Router       /orders/{id}/qr [get]
func orderQRHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := svc.Get(c.Request.Context(), httpx.Principal(c), c.Param("id"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		code := qr.Encode(v.ID)
		if c.Query("format") == "dataurl" {
			url, err := code.DataURL(qrSize)
			if err != nil {
				httpx.Fail(c, apperr.Internal("encode qr", err))
				return
			}
			c.JSON(http.StatusOK, gin.H{"orderId": v.ID, "qr": url})
			return
		}
		png, err := code.PNG(qrSize)
		if err != nil {
			httpx.Fail(c, apperr.Internal("encode qr", err))
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

// staffOrdersHandler godoc
// @Summary      All orders for the staff dashboard
// @Tags         staff
// @Produce      json
// @Param        active  query     bool  false  "hide HandedOver and Cancelled"
// @Success      200     {object}  ordersResponse
// @Failure      403     {object}  httpx.HTTPError
// @Router       /staff/orders [get]
func staffOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, _ := strconv.ParseBool(c.Query("active"))
		out, err := svc.ListForStaff(c.Request.Context(), httpx.Principal(c), active)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		writeOrders(c, out)
	}
}

// scanHandler godoc
// @Summary      Resolve a scanned QR payload to an order
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body      scanRequest  true  "scanned text"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      403   {object}  httpx.HTTPError
// @Failure      404   {object}  httpx.HTTPError
// @Router       /staff/scan [post]
func scanHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in scanRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		// the same list the dashboard holds
		loaded, err := svc.ListForStaff(c.Request.Context(), httpx.Principal(c), false)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		v, err := qr.Resolve(in.Payload, loaded)
		switch {
		case errors.Is(err, qr.ErrInvalidPayload):
			httpx.Fail(c, apperr.Validation(err.Error()))
			return
		case errors.Is(err, qr.ErrOrderNotFound):
			httpx.Fail(c, apperr.NotFound(err.Error()))
			return
		case err != nil:
			httpx.Fail(c, apperr.Internal("resolve scan", err))
			return
		}
		c.JSON(http.StatusOK, orderResponse{Order: v})
	}
}
