package httpx

import "context"

type ctxKey string

const (
	CtxKeyMemberID ctxKey = "member_id"
	CtxKeyRole     ctxKey = "role"
	CtxKeyClaims   ctxKey = "claims"
)

// MemberIDFromCtx returns the authenticated member ID, or "" when the
// request is anonymous.
func MemberIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyMemberID).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated role, or "" when anonymous.
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
