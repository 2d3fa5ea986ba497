package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/cafe-orders/internal/httpx"
	"github.com/MikeMC777/cafe-orders/internal/menu"
)

type itemResponse struct {
	Item *menu.MenuItem `json:"item"`
}

// listMenuHandler godoc
// @Summary      List all menu items
// @Tags         menu
// @Produce      json
// @Success      200  {object}  menu.ListResponse
// @Router       /menu [get]
func listMenuHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if items == nil {
			items = []menu.MenuItem{}
		}
		c.JSON(http.StatusOK, menu.ListResponse{Items: items})
	}
}

// createMenuItemHandler godoc
// @Summary      Create a menu item (staff)
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body      menu.CreateItemRequest  true  "item"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      403   {object}  httpx.HTTPError
// @Router       /menu [post]
func createMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.CreateItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		it, err := svc.Create(c.Request.Context(), httpx.Principal(c), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, itemResponse{Item: it})
	}
}

// updateMenuItemHandler godoc
// @Summary      Edit a menu item or toggle availability (staff)
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "item id"
// @Param        body  body      menu.UpdateItemRequest  true  "fields to change"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      403   {object}  httpx.HTTPError
// @Failure      404   {object}  httpx.HTTPError
// @Router       /menu/{id} [patch]
func updateMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.UpdateItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		it, err := svc.Update(c.Request.Context(), httpx.Principal(c), c.Param("id"), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, itemResponse{Item: it})
	}
}

// deleteMenuItemHandler godoc
// @Summary      Delete a menu item (staff)
// @Tags         menu
// @Param        id   path  string  true  "item id"
// @Success      200
// @Failure      403  {object}  httpx.HTTPError
// @Failure      404  {object}  httpx.HTTPError
// @Router       /menu/{id} [delete]
func deleteMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), httpx.Principal(c), c.Param("id")); err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
