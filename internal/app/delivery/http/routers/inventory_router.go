package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachInventoryRoutes(router chi.Router, productController *controllers.ProductController, inventoryController *controllers.InventoryController, withdrawalController *controllers.WithdrawalController) {
	router.Route("/products", func(r chi.Router) {
		r.Get("/", productController.FindAllProducts)
		r.Post("/", productController.CreateProduct)
		r.Get("/{product_id}", productController.FindProductByID)
		r.Put("/{product_id}", productController.UpdateProduct)
		r.Delete("/{product_id}", productController.DeleteProduct)
	})

	router.Get("/stock", inventoryController.FindStockByBranch)
	router.Get("/stock/low", inventoryController.FindLowStock)
	router.Post("/stock/receive", inventoryController.ReceiveStock)
	router.Post("/stock/adjust", inventoryController.AdjustStock)
	router.Post("/stock/transfer", inventoryController.TransferStock)
	router.Get("/batches", inventoryController.FindBatches)
	router.Get("/movements", inventoryController.FindAllStockMovements)

	router.Route("/withdrawals", func(r chi.Router) {
		r.Get("/", withdrawalController.FindAllWithdrawals)
		r.Post("/", withdrawalController.CreateWithdrawal)
		r.Get("/{withdrawal_id}", withdrawalController.FindWithdrawalByID)
		r.Post("/{withdrawal_id}/approve", withdrawalController.ApproveWithdrawal)
		r.Post("/{withdrawal_id}/reject", withdrawalController.RejectWithdrawal)
	})
}
