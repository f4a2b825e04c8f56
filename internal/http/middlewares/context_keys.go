package middlewares

const (
	CtxRequestID = "request_id"
	CtxVisitorID = "visitor_id"
)
