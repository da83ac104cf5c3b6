package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-management/internal/item/delivery/http"
	cachedRepo "item-management/internal/item/repository/cached"
	mongoRepo "item-management/internal/item/repository/mongo"
	itemUC "item-management/internal/item/usecase"
	"item-management/internal/middleware"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.collection, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository, wrapped with a point-read cache
	repo := mongoRepo.New(srv.collection, srv.l)
	repo, err := cachedRepo.New(repo, srv.detailCacheSize, srv.l)
	if err != nil {
		return err
	}

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/items
	itemHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
