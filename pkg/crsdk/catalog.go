package crsdk

import "net/http"

// Operation is one static catalog entry: where an endpoint lives and how its
// request and response are shaped. The generic Invoke consumes these; typed
// wrappers in the session_*.go files pick the right entry and models.
type Operation struct {
	Name   string
	Method string
	Path   string

	// HasBody marks POST operations that require a JSON body. The Control
	// Room rejects body-less POSTs, so Invoke sends a literal {} when the
	// caller supplies nothing.
	HasBody bool

	// ListEnvelope marks endpoints that wrap results as {"list": [...]}.
	// Invoke unwraps the envelope before decoding into the caller's target.
	ListEnvelope bool
}

// The fixed set of Control Room operations this client speaks.
var (
	OpAuditMessageList = Operation{
		Name: "audit.messages.list", Method: http.MethodPost,
		Path: "/v1/audit/messages/list", HasBody: true, ListEnvelope: true,
	}

	OpLicenseDetails = Operation{
		Name: "license.details", Method: http.MethodGet,
		Path: "/v2/license/details",
	}
	OpProductLicenseList = Operation{
		Name: "license.products.list", Method: http.MethodPost,
		Path: "/v2/license/product/list", HasBody: true, ListEnvelope: true,
	}

	OpBotRunData = Operation{
		Name: "botinsight.rundata", Method: http.MethodGet,
		Path: "/v2/botinsight/data/api/getbotrundata",
	}
	OpTaskLogData = Operation{
		Name: "botinsight.tasklog", Method: http.MethodGet,
		Path: "/v2/botinsight/data/api/gettasklogdata",
	}

	OpRunAsUserList = Operation{
		Name: "devices.runasusers.list", Method: http.MethodPost,
		Path: "/v1/devices/runasusers/list", HasBody: true, ListEnvelope: true,
	}
	OpDeviceList = Operation{
		Name: "devices.list", Method: http.MethodPost,
		Path: "/v2/devices/list", HasBody: true, ListEnvelope: true,
	}
	OpDevicePoolList = Operation{
		Name: "devices.pools.list", Method: http.MethodPost,
		Path: "/v2/devices/pools/list", HasBody: true, ListEnvelope: true,
	}

	OpWorkItemModelList = Operation{
		Name: "wlm.workitemmodels.list", Method: http.MethodPost,
		Path: "/v3/wlm/workitemmodels/list", HasBody: true, ListEnvelope: true,
	}
	OpWLMAutomationList = Operation{
		Name: "wlm.automations.list", Method: http.MethodPost,
		Path: "/v3/wlm/automations/list", HasBody: true, ListEnvelope: true,
	}

	OpAutomationDeploy = Operation{
		Name: "automations.deploy", Method: http.MethodPost,
		Path: "/v3/automations/deploy", HasBody: true,
	}

	OpRepositoryFileList = Operation{
		Name: "repository.files.list", Method: http.MethodPost,
		Path: "/v2/repository/file/list", HasBody: true, ListEnvelope: true,
	}

	OpUserList = Operation{
		Name: "users.list", Method: http.MethodPost,
		Path: "/v1/usermanagement/users/list", HasBody: true, ListEnvelope: true,
	}
	OpRoleList = Operation{
		Name: "roles.list", Method: http.MethodPost,
		Path: "/v1/usermanagement/roles/list", HasBody: true, ListEnvelope: true,
	}
	OpUserCreate = Operation{
		Name: "users.create", Method: http.MethodPost,
		Path: "/v1/usermanagement/users", HasBody: true,
	}
)
