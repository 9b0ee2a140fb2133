package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitchside/newsletter-service/internal"
	"github.com/pitchside/newsletter-service/internal/auth"
	"github.com/pitchside/newsletter-service/internal/cache"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/hash"
)

type NewsletterRegistry interface {
	SaveNewsletter(ctx context.Context, createdBy string, req dto.NewsletterReq) (dto.NewsletterResp, error)
	GetNewsletters(ctx context.Context, filters dto.NewsletterFilters) (dto.Page[dto.NewsletterSummary], error)
	GetNewsletter(ctx context.Context, id int64) (dto.NewsletterResp, error)
	UpdateNewsletter(ctx context.Context, id int64, req dto.NewsletterReq) (dto.NewsletterResp, error)
	UpdateNewsletterStatus(ctx context.Context, changedBy string, id int64, status dto.NewsletterStatus) error
	DeleteNewsletter(ctx context.Context, id int64) error
	GetStatusLog(ctx context.Context, id int64) ([]dto.NewsletterStatusLogEntry, error)
}

type NewsletterController struct {
	Registry NewsletterRegistry
	Cache    cache.Cache
}

func newsletterHashExists(ctx context.Context, c cache.Cache, hash string) (bool, error) {
	_, err, ok := c.Get(ctx, cache.GetHashKey(hash))

	if err != nil {
		return false, err
	}

	return ok, nil
}

func setNewsletterHash(ctx context.Context, c cache.Cache, hash string) error {
	key := cache.GetHashKey(hash)
	return c.Set(ctx, key, "1", NewsletterHashTTL)
}

func invalidateCachedNewsletters(c *gin.Context, store cache.Cache) {

	basePath, err := internal.GetBasePath(c.Request.URL.Path, ".*/newsletters")

	if err != nil {
		slog.Error(fmt.Errorf("failed to resolve newsletters base path - %w", err).Error())
		return
	}

	err = store.DelWithPrefix(
		c.Request.Context(),
		cache.GetEndpointKeyWithPrefix(basePath, nil))

	if err != nil {
		err = fmt.Errorf("failed to delete cached newsletters - %w", err)
		slog.Error(err.Error())
	}
}

func (nc *NewsletterController) CreateNewsletter(c *gin.Context) {

	var req dto.NewsletterReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userId := c.GetHeader(string(auth.UserHeader))

	reqHash := hash.GetMd5Hash(fmt.Sprintf("%s:%s:%s:%s",
		userId, req.Title, req.Topic, req.Contents))

	if exists, err := newsletterHashExists(c.Request.Context(), nc.Cache, reqHash); err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	} else if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "newsletter already submitted"})
		return
	}

	newsletter, err := nc.Registry.SaveNewsletter(c.Request.Context(), userId, req)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newsletter)

	if err := setNewsletterHash(c.Request.Context(), nc.Cache, reqHash); err != nil {
		slog.Error("failed to set newsletter hash",
			"error", err.Error(),
			"newsletterId", newsletter.Id)
	}

	invalidateCachedNewsletters(c, nc.Cache)
}

func (nc *NewsletterController) GetNewsletters(c *gin.Context) {

	var filters dto.NewsletterFilters

	if err := c.ShouldBind(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletters, err := nc.Registry.GetNewsletters(c.Request.Context(), filters)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newsletters)
}

func (nc *NewsletterController) GetNewsletter(c *gin.Context) {

	var params dto.NewsletterUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter, err := nc.Registry.GetNewsletter(c.Request.Context(), params.Id)

	if err != nil && errors.As(err, &internal.EntityNotFound{}) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newsletter)
}

func (nc *NewsletterController) UpdateNewsletter(c *gin.Context) {

	var params dto.NewsletterUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.NewsletterReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter, err := nc.Registry.UpdateNewsletter(c.Request.Context(), params.Id, req)

	if err != nil {
		if errors.As(err, &internal.EntityNotFound{}) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		} else if errors.As(err, &internal.InvalidNewsletterStatus{}) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		} else {
			slog.Error(err.Error())
			c.Status(http.StatusInternalServerError)
			return
		}
	}

	c.JSON(http.StatusOK, newsletter)

	invalidateCachedNewsletters(c, nc.Cache)
}

func (nc *NewsletterController) UpdateStatus(c *gin.Context) {

	var params dto.NewsletterUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var update dto.NewsletterStatusUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userId := c.GetHeader(string(auth.UserHeader))

	err := nc.Registry.UpdateNewsletterStatus(c.Request.Context(), userId, params.Id, update.Status)

	if err != nil {
		if errors.As(err, &internal.EntityNotFound{}) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		} else if errors.As(err, &internal.InvalidNewsletterStatus{}) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		} else {
			slog.Error(err.Error())
			c.Status(http.StatusInternalServerError)
			return
		}
	}

	c.Status(http.StatusNoContent)

	invalidateCachedNewsletters(c, nc.Cache)
}

func (nc *NewsletterController) DeleteNewsletter(c *gin.Context) {

	var params dto.NewsletterUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := nc.Registry.DeleteNewsletter(c.Request.Context(), params.Id)

	if err != nil {
		if errors.As(err, &internal.InvalidNewsletterStatus{}) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)

	invalidateCachedNewsletters(c, nc.Cache)
}

func (nc *NewsletterController) GetStatusLog(c *gin.Context) {

	var params dto.NewsletterUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := nc.Registry.GetStatusLog(c.Request.Context(), params.Id)

	if err != nil && errors.As(err, &internal.EntityNotFound{}) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, entries)
}
