package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/metrics"
)

// NewRouter builds the HTTP surface over the registry. The provider and the
// statter are optional; without a provider no authentication is enforced, and
// without a statter no request metrics are emitted.
func NewRouter(
	logger logx.Logger,
	securityLogger logx.SecurityLogger,
	roleRepo repos.RoleRepo,
	accessRepo repos.AccessRepo,
	provider OIDCProvider,
	statter metrics.Statter,
) *mux.Router {
	roleHandler := NewRoleHandler(logger, securityLogger, roleRepo)
	accessHandler := NewAccessHandler(logger, securityLogger, accessRepo)

	router := mux.NewRouter()
	router.Use(PeerMiddleware)
	router.Use(mux.MiddlewareFunc(RecoveryMiddleware(logger)))
	if statter != nil {
		router.Use(MetricsMiddleware(statter))
	}
	if provider != nil {
		router.Use(mux.MiddlewareFunc(AuthMiddleware(provider, securityLogger)))
	}

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/roles", roleHandler.CreateRole).Methods(http.MethodPost).Name("CreateRole")
	v1.HandleFunc("/roles/{name}", roleHandler.GetRole).Methods(http.MethodGet).Name("GetRole")
	v1.HandleFunc("/roles/{name}", roleHandler.DeleteRole).Methods(http.MethodDelete).Name("DeleteRole")
	v1.HandleFunc("/roles/{name}/statements", roleHandler.ListStatements).Methods(http.MethodGet).Name("ListRoleStatements")
	v1.HandleFunc("/roles/{name}/permissions", roleHandler.AttachPermissions).Methods(http.MethodPost).Name("AttachPermissions")
	v1.HandleFunc("/access/query", accessHandler.HasAccess).Methods(http.MethodPost).Name("HasAccess")
	v1.HandleFunc("/access/allowed-resources", accessHandler.ListAllowedResources).Methods(http.MethodPost).Name("ListAllowedResources")

	return router
}
