package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus-market/constants"
	"campus-market/dto"
	"campus-market/services"
	"campus-market/sessions"
	"campus-market/validation"
)

// ItemAPIController mirrors the item pages as JSON: the same validation
// chains and the same ownership predicate, but status codes instead of
// flash redirects.
type IItemAPIController interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	ByCategory(ctx *gin.Context)
	Hot(ctx *gin.Context)
}

type ItemAPIController struct {
	service services.IItemService
	log     *logrus.Logger
}

func NewItemAPIController(service services.IItemService, log *logrus.Logger) IItemAPIController {
	return &ItemAPIController{service: service, log: log}
}

func (c *ItemAPIController) List(ctx *gin.Context) {
	var filter dto.ItemFilter
	_ = ctx.ShouldBindQuery(&filter)

	items, err := c.service.FindAll(filter)
	if err != nil {
		c.serverError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewItemResponses(*items))
}

func (c *ItemAPIController) Get(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	item, err := c.service.FindById(uint(itemID))
	if err != nil {
		if err == services.ErrItemNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrItemNotFound})
			return
		}
		c.serverError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewItemResponse(*item))
}

func (c *ItemAPIController) Create(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	var input dto.ItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	if errs := c.validateInput(sess.Lang, input); errs != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	item, err := c.service.Create(input, sess.User.ID)
	if err != nil {
		c.serverError(ctx, err)
		return
	}

	resp := dto.NewItemResponse(*item)
	resp.Seller.Username = sess.User.Username
	ctx.JSON(http.StatusCreated, resp)
}

func (c *ItemAPIController) Update(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	var input dto.ItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	if errs := c.validateInput(sess.Lang, input); errs != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	item, err := c.service.Update(uint(itemID), sess.User.ID, input)
	if err != nil {
		switch err {
		case services.ErrItemNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrItemNotFound})
		case services.ErrNotItemOwner:
			ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to update this item"})
		default:
			c.serverError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.NewItemResponse(*item))
}

func (c *ItemAPIController) Delete(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	if err := c.service.Delete(uint(itemID), sess.User.ID); err != nil {
		switch err {
		case services.ErrItemNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrItemNotFound})
		case services.ErrNotItemOwner:
			ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this item"})
		default:
			c.serverError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func (c *ItemAPIController) ByCategory(ctx *gin.Context) {
	items, err := c.service.FindByCategory(ctx.Param("category"), constants.CategoryPageSize)
	if err != nil {
		c.serverError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewItemResponses(*items))
}

func (c *ItemAPIController) Hot(ctx *gin.Context) {
	items, err := c.service.FindRecent(constants.HotPageSize)
	if err != nil {
		c.serverError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewItemResponses(*items))
}

// validateInput runs the shared item rule chains against the JSON payload.
func (c *ItemAPIController) validateInput(lang string, input dto.ItemInput) []validation.FieldError {
	price := ""
	if input.Price != nil {
		price = strconv.FormatFloat(*input.Price, 'f', -1, 64)
	}
	return validation.Validate(lang, validation.ItemChains(dto.ItemForm{
		Title:       input.Title,
		Category:    input.Category,
		Price:       price,
		Description: input.Description,
	})...)
}

func (c *ItemAPIController) serverError(ctx *gin.Context, err error) {
	c.log.Errorf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
}
