package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

type RoleHandler struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger

	roleRepo repos.RoleRepo
}

func NewRoleHandler(
	logger logx.Logger,
	securityLogger logx.SecurityLogger,
	roleRepo repos.RoleRepo,
) *RoleHandler {
	return &RoleHandler{
		logger:         logger,
		securityLogger: securityLogger,
		roleRepo:       roleRepo,
	}
}

func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error(failedToDecodeRequest, err)
		writeError(w, ErrInvalidRequestBody)
		return
	}

	h.securityLogger.Log(ctx, "CreateRole", "Role creation", logx.SecurityData{Key: "roleName", Value: req.Name})

	logger := h.logger.WithName("create-role").WithData(logx.Data{Key: "role.name", Value: req.Name})
	logger.Debug(starting)

	role, err := h.roleRepo.CreateRole(ctx, logger, req.Name, req.Statements...)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Debug(success)
	writeJSON(w, http.StatusCreated, RoleResponse{Name: role.Name})
}

func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	h.securityLogger.Log(ctx, "DeleteRole", "Role deletion", logx.SecurityData{Key: "roleName", Value: name})

	logger := h.logger.WithName("delete-role").WithData(logx.Data{Key: "role.name", Value: name})
	logger.Debug(starting)

	if err := h.roleRepo.DeleteRole(ctx, logger, name); err != nil {
		writeError(w, err)
		return
	}

	logger.Debug(success)
	w.WriteHeader(http.StatusNoContent)
}

func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	logger := h.logger.WithName("get-role").WithData(logx.Data{Key: "role.name", Value: name})
	logger.Debug(starting)

	role, err := h.roleRepo.FindRole(ctx, logger, repos.FindRoleQuery{RoleName: name})
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Debug(success)
	writeJSON(w, http.StatusOK, RoleResponse{Name: role.Name})
}

// AttachPermissions resolves the wire permission specification against the
// service table and records the resulting statements on the role.
func (h *RoleHandler) AttachPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	var req AttachPermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error(failedToDecodeRequest, err)
		writeError(w, ErrInvalidRequestBody)
		return
	}

	h.securityLogger.Log(ctx, "AttachPermissions", "Permission attachment", logx.SecurityData{Key: "roleName", Value: name})

	logger := h.logger.WithName("attach-permissions").WithData(logx.Data{Key: "role.name", Value: name})
	logger.Debug(starting)

	perms, err := req.permissions()
	if err != nil {
		writeError(w, err)
		return
	}

	role := permissions.NewExecutionRole(name)
	if err := permissions.Attach(ctx, logger, role, perms); err != nil {
		writeError(w, err)
		return
	}

	if err := h.roleRepo.AttachStatements(ctx, logger, name, role.Statements()...); err != nil {
		writeError(w, err)
		return
	}

	logger.Debug(success)
	writeJSON(w, http.StatusOK, ListStatementsResponse{Statements: role.Statements()})
}

func (h *RoleHandler) ListStatements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	logger := h.logger.WithName("list-role-statements").WithData(logx.Data{Key: "role.name", Value: name})
	logger.Debug(starting)

	statements, err := h.roleRepo.ListRoleStatements(ctx, logger, repos.ListRoleStatementsQuery{RoleName: name})
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Debug(success)
	writeJSON(w, http.StatusOK, ListStatementsResponse{Statements: statements})
}
