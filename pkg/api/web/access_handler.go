package web

import (
	"encoding/json"
	"net/http"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
)

type AccessHandler struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger

	accessRepo repos.AccessRepo
}

func NewAccessHandler(
	logger logx.Logger,
	securityLogger logx.SecurityLogger,
	accessRepo repos.AccessRepo,
) *AccessHandler {
	return &AccessHandler{
		logger:         logger,
		securityLogger: securityLogger,
		accessRepo:     accessRepo,
	}
}

func (h *AccessHandler) HasAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req HasAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error(failedToDecodeRequest, err)
		writeError(w, ErrInvalidRequestBody)
		return
	}

	h.securityLogger.Log(ctx, "HasAccess", "Access check",
		logx.SecurityData{Key: "roleName", Value: req.RoleName},
		logx.SecurityData{Key: "action", Value: req.Action},
	)

	logger := h.logger.WithName("has-access").WithData(
		logx.Data{Key: "role.name", Value: req.RoleName},
		logx.Data{Key: "statement.action", Value: req.Action},
		logx.Data{Key: "statement.resource", Value: req.Resource},
	)
	logger.Debug(starting)

	hasAccess, err := h.accessRepo.HasAccess(ctx, logger, repos.HasAccessQuery{
		RoleName: req.RoleName,
		Action:   req.Action,
		Resource: req.Resource,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Debug(success)
	writeJSON(w, http.StatusOK, HasAccessResponse{HasAccess: hasAccess})
}

func (h *AccessHandler) ListAllowedResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ListAllowedResourcesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error(failedToDecodeRequest, err)
		writeError(w, ErrInvalidRequestBody)
		return
	}

	logger := h.logger.WithName("list-allowed-resources").WithData(
		logx.Data{Key: "role.name", Value: req.RoleName},
		logx.Data{Key: "statement.action", Value: req.Action},
	)
	logger.Debug(starting)

	resources, err := h.accessRepo.ListAllowedResources(ctx, logger, repos.ListAllowedResourcesQuery{
		RoleName: req.RoleName,
		Action:   req.Action,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Debug(success)
	writeJSON(w, http.StatusOK, ListAllowedResourcesResponse{Resources: resources})
}
