package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sikarir/sikarir-backend/internal/services"
	"github.com/sikarir/sikarir-backend/internal/utils"
	"gorm.io/datatypes"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	u, err := h.svc.Me(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

type EditAccountRequest struct {
	Name        *string          `json:"name,omitempty"`
	Email       *string          `json:"email,omitempty" binding:"omitempty,email"`
	Password    *string          `json:"password,omitempty"`
	Interests   *[]string        `json:"interests,omitempty"`
	Preferences *json.RawMessage `json:"preferences,omitempty"`
}

func (h *UserHandler) EditAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req EditAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.EditAccount", "invalid request body", err))
		return
	}

	in := services.EditAccountInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Interests: req.Interests,
	}
	if req.Preferences != nil {
		p := datatypes.JSON(*req.Preferences)
		in.Preferences = &p
	}

	u, err := h.svc.EditAccount(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

var photoContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

func (h *UserHandler) UploadPhoto(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.UploadPhoto", "missing multipart field 'photo'", err))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.UploadPhoto", "only .jpg/.jpeg/.png is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > 5<<20 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.UploadPhoto", "file too large (max 5MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "UserHandler.UploadPhoto", "failed to open upload", err))
		return
	}
	defer file.Close()

	// sniff content type (read 512 bytes)
	head := make([]byte, 512)
	n, _ := file.Read(head)
	head = head[:n]
	ct := http.DetectContentType(head)
	sniffedExt, allowed := photoContentTypes[ct]
	if !allowed {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.UploadPhoto", "invalid content type (must be jpeg or png)", nil))
		return
	}

	// re-compose stream: head + remaining file
	r := io.MultiReader(bytes.NewReader(head), file)

	u, err := h.svc.SetPhoto(c.Request.Context(), userID, sniffedExt, ct, r)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
