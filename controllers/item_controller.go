package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus-market/constants"
	"campus-market/dto"
	"campus-market/i18n"
	"campus-market/models"
	"campus-market/services"
	"campus-market/sessions"
	"campus-market/storage"
	"campus-market/validation"
)

type IItemController interface {
	Home(ctx *gin.Context)
	Index(ctx *gin.Context)
	New(ctx *gin.Context)
	Create(ctx *gin.Context)
	Show(ctx *gin.Context)
	Edit(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service        services.IItemService
	sessionManager *sessions.Manager
	images         *storage.ImageStore
	log            *logrus.Logger
}

func NewItemController(service services.IItemService, sessionManager *sessions.Manager, images *storage.ImageStore, log *logrus.Logger) IItemController {
	return &ItemController{service: service, sessionManager: sessionManager, images: images, log: log}
}

func (c *ItemController) Home(ctx *gin.Context) {
	items, err := c.service.FindRecent(constants.HomePageSize)
	if err != nil {
		renderServerError(ctx, c.log, err)
		return
	}
	ctx.HTML(http.StatusOK, "index.html", viewData(ctx, "title_home", gin.H{
		"recentItems": *items,
	}))
}

func (c *ItemController) Index(ctx *gin.Context) {
	var filter dto.ItemFilter
	_ = ctx.ShouldBindQuery(&filter)

	items, err := c.service.FindAll(filter)
	if err != nil {
		renderServerError(ctx, c.log, err)
		return
	}

	if filter.Category == "" {
		filter.Category = "全部"
	}
	ctx.HTML(http.StatusOK, "items_list.html", viewData(ctx, "title_items", gin.H{
		"items":   *items,
		"filters": filter,
	}))
}

func (c *ItemController) New(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "items_new.html", viewData(ctx, "title_new_item", gin.H{
		"errors":   []validation.FieldError{},
		"formData": dto.ItemForm{},
	}))
}

func (c *ItemController) Create(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	var form dto.ItemForm
	_ = ctx.ShouldBind(&form)
	form.Title = strings.TrimSpace(form.Title)
	form.Category = strings.TrimSpace(form.Category)

	if errs := validation.Validate(sess.Lang, validation.ItemChains(form)...); errs != nil {
		ctx.HTML(http.StatusUnprocessableEntity, "items_new.html", viewData(ctx, "title_new_item", gin.H{
			"errors":   errs,
			"formData": form,
		}))
		return
	}

	imagePath := ""
	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		imagePath, err = c.images.Save(file)
		if err != nil {
			renderServerError(ctx, c.log, err)
			return
		}
	}

	price, _ := strconv.ParseFloat(form.Price, 64)
	_, err := c.service.Create(dto.ItemInput{
		Title:       form.Title,
		Category:    form.Category,
		Price:       &price,
		Description: form.Description,
		ImagePath:   &imagePath,
	}, sess.User.ID)
	if err != nil {
		renderServerError(ctx, c.log, err)
		return
	}

	sess.SetFlash("success", i18n.T(sess.Lang, "flash_item_created"))
	c.sessionManager.Save(ctx, sess)
	ctx.Redirect(http.StatusFound, "/items")
}

func (c *ItemController) Show(ctx *gin.Context) {
	item := c.findItemOrRedirect(ctx)
	if item == nil {
		return
	}
	ctx.HTML(http.StatusOK, "items_detail.html", viewData(ctx, "title_item_detail", gin.H{
		"item": item,
	}))
}

func (c *ItemController) Edit(ctx *gin.Context) {
	item := c.findItemOrRedirect(ctx)
	if item == nil {
		return
	}
	if !c.ensureOwner(ctx, item, "flash_edit_own_only") {
		return
	}

	ctx.HTML(http.StatusOK, "items_edit.html", viewData(ctx, "title_edit_item", gin.H{
		"item":   item,
		"errors": []validation.FieldError{},
		"formData": dto.ItemForm{
			Title:       item.Title,
			Category:    item.Category,
			Price:       strconv.FormatFloat(item.Price, 'f', -1, 64),
			Description: item.Description,
		},
	}))
}

func (c *ItemController) Update(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	item := c.findItemOrRedirect(ctx)
	if item == nil {
		return
	}
	if !c.ensureOwner(ctx, item, "flash_edit_own_only") {
		return
	}

	var form dto.ItemForm
	_ = ctx.ShouldBind(&form)
	form.Title = strings.TrimSpace(form.Title)
	form.Category = strings.TrimSpace(form.Category)

	if errs := validation.Validate(sess.Lang, validation.ItemChains(form)...); errs != nil {
		ctx.HTML(http.StatusUnprocessableEntity, "items_edit.html", viewData(ctx, "title_edit_item", gin.H{
			"item":     item,
			"errors":   errs,
			"formData": form,
		}))
		return
	}

	input := dto.ItemInput{
		Title:       form.Title,
		Category:    form.Category,
		Description: form.Description,
	}
	price, _ := strconv.ParseFloat(form.Price, 64)
	input.Price = &price

	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		imagePath, err := c.images.Save(file)
		if err != nil {
			renderServerError(ctx, c.log, err)
			return
		}
		input.ImagePath = &imagePath
	}

	if _, err := c.service.Update(item.ID, sess.User.ID, input); err != nil {
		renderServerError(ctx, c.log, err)
		return
	}

	sess.SetFlash("success", i18n.T(sess.Lang, "flash_item_updated"))
	c.sessionManager.Save(ctx, sess)
	ctx.Redirect(http.StatusFound, "/items")
}

func (c *ItemController) Delete(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	item := c.findItemOrRedirect(ctx)
	if item == nil {
		return
	}
	if !c.ensureOwner(ctx, item, "flash_delete_own_only") {
		return
	}

	if err := c.service.Delete(item.ID, sess.User.ID); err != nil {
		renderServerError(ctx, c.log, err)
		return
	}

	sess.SetFlash("success", i18n.T(sess.Lang, "flash_item_deleted"))
	c.sessionManager.Save(ctx, sess)
	ctx.Redirect(http.StatusFound, "/items")
}

// findItemOrRedirect loads the item from the :id parameter. Missing items
// become a flash warning and a redirect back to the listing, mirroring the
// page surface's soft 404.
func (c *ItemController) findItemOrRedirect(ctx *gin.Context) *models.Item {
	sess := sessions.Current(ctx)

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.flashRedirect(ctx, sess, "danger", "flash_item_not_found")
		return nil
	}

	item, err := c.service.FindById(uint(itemID))
	if err != nil {
		if err == services.ErrItemNotFound {
			c.flashRedirect(ctx, sess, "danger", "flash_item_not_found")
			return nil
		}
		renderServerError(ctx, c.log, err)
		return nil
	}
	return item
}

func (c *ItemController) ensureOwner(ctx *gin.Context, item *models.Item, messageKey string) bool {
	sess := sessions.Current(ctx)
	if !services.OwnsItem(sess.User.ID, item) {
		c.flashRedirect(ctx, sess, "danger", messageKey)
		return false
	}
	return true
}

func (c *ItemController) flashRedirect(ctx *gin.Context, sess *sessions.Session, kind, messageKey string) {
	sess.SetFlash(kind, i18n.T(sess.Lang, messageKey))
	c.sessionManager.Save(ctx, sess)
	ctx.Redirect(http.StatusFound, "/items")
}
