package http

import (
	"net/http"

	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/httpx"
)

type MembersHandler struct {
	DirectoryService *service.DirectoryService
}

// ServeHTTP godoc
//
//	@Summary		Member Directory
//	@Description	List every active member except the caller, ordered by name.
//	@Tags			Members
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		chaptersdk.MemberSummary	"Active members"
//	@Failure		401	{object}	chaptersdk.ErrorResponse	"message"
//	@Router			/v1/members [get].
func (h *MembersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	members, err := h.DirectoryService.ListMembers(r.Context(), httpx.MemberIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]chaptersdk.MemberSummary, 0, len(members))
	for _, m := range members {
		out = append(out, toSummaryDTO(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
