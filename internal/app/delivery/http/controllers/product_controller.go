package controllers

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type ProductController struct {
	Log            *zap.Logger
	ProductUsecase contracts.ProductUsecase
}

var (
	productControllerInstance *ProductController
	onceProductController     sync.Once
)

func NewProductController(logger *zap.Logger, productUsecase contracts.ProductUsecase) *ProductController {
	onceProductController.Do(func() {
		productControllerInstance = &ProductController{
			Log:            logger,
			ProductUsecase: productUsecase,
		}
	})
	return productControllerInstance
}

func (ctrl *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Product)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := ctrl.ProductUsecase.CreateProduct(ctx, request)
	if err != nil {
		ctrl.Log.Error("ProductController.CreateProduct error from ProductUsecase.CreateProduct",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProductSuccessMessage, product)
}

func (ctrl *ProductController) FindAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := ctrl.ProductUsecase.FindAllProducts(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductsSuccessMessage, products)
}

func (ctrl *ProductController) FindProductByID(w http.ResponseWriter, r *http.Request) {
	productID, err := objectIDParam(r, constvars.URLParamProductID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := ctrl.ProductUsecase.FindProductByID(ctx, productID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductSuccessMessage, product)
}

func (ctrl *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := objectIDParam(r, constvars.URLParamProductID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Product)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := ctrl.ProductUsecase.UpdateProduct(ctx, productID, request)
	if err != nil {
		ctrl.Log.Error("ProductController.UpdateProduct error from ProductUsecase.UpdateProduct",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProductSuccessMessage, product)
}

func (ctrl *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := objectIDParam(r, constvars.URLParamProductID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.ProductUsecase.DeleteProduct(ctx, productID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteProductSuccessMessage, nil)
}
