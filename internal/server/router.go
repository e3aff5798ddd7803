package server

import (
	"net/http"
	"time"

	branchctrl "franquicia/internal/branch/controller"
	franchisectrl "franquicia/internal/franchise/controller"
	productctrl "franquicia/internal/product/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	franchiseCtrl *franchisectrl.FranchiseController,
	branchCtrl *branchctrl.BranchController,
	productCtrl *productctrl.ProductController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/franchises", franchiseCtrl.Create)
		r.Patch("/franchises/{franchiseId}/name", franchiseCtrl.UpdateName)
		r.Get("/franchises/{franchiseId}/max-stock-products", franchiseCtrl.GetMaxStockProducts)
		r.Post("/franchises/{franchiseId}/branches", branchCtrl.Add)

		r.Patch("/branches/{branchId}/name", branchCtrl.UpdateName)
		r.Post("/branches/{branchId}/products", productCtrl.Add)
		r.Delete("/branches/{branchId}/products/{productId}", productCtrl.Remove)

		r.Patch("/products/{productId}/name", productCtrl.UpdateName)
		r.Patch("/products/{productId}/stock", productCtrl.UpdateStock)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
