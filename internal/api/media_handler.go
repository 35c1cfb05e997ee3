package api

import (
	"context"
	"log"
	"net/http"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler resolves media locators and serves card animations.
type MediaHandler struct {
	resolver *media.Resolver
	fetcher  media.Fetcher
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(resolver *media.Resolver, fetcher media.Fetcher) *MediaHandler {
	return &MediaHandler{resolver: resolver, fetcher: fetcher}
}

// LocatorResponse is a resolved media locator.
type LocatorResponse struct {
	Name    string `json:"name"`
	Locator string `json:"locator"`
}

// ResolveImage handles GET /api/v1/media/image?name=
func (h *MediaHandler) ResolveImage(c *gin.Context) {
	name := c.Query("name")
	c.JSON(http.StatusOK, LocatorResponse{Name: name, Locator: h.resolver.ResolveImage(name)})
}

// ResolveAnimation handles GET /api/v1/media/animation?name=
func (h *MediaHandler) ResolveAnimation(c *gin.Context) {
	name := c.Query("name")
	c.JSON(http.StatusOK, LocatorResponse{Name: name, Locator: h.resolver.ResolveAnimation(name)})
}

// GetAnimation handles GET /api/v1/animations/:name
//
// The payload comes from the resolved locator, or from the default locator
// when that fails. When both fail the card renders nothing: 204.
// A client that goes away disposes the loader and nothing is written.
func (h *MediaHandler) GetAnimation(c *gin.Context) {
	ctx := c.Request.Context()
	loader := media.NewAnimationLoader(h.resolver, h.fetcher)
	stop := context.AfterFunc(ctx, loader.Dispose)
	defer stop()

	loader.Load(ctx, c.Param("name"))
	asset, err := loader.Wait(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Printf("INFO: [%s] animation %q abandoned: %v", getRequestIDFromContext(c), c.Param("name"), err)
		c.Abort()
		return
	}

	c.Header(AnimationStateHeader, string(asset.State))
	if asset.State == domain.LoadStateFailed {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "application/json", asset.Payload)
}
