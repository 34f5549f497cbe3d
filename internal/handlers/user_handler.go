package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"finsight/internal/config"
	apperrors "finsight/internal/errors"
	"finsight/internal/services"
	"finsight/internal/uuid"
)

// profilePicSize is the square bounding box profile pictures are fitted into.
const profilePicSize = 256

// maxProfilePicBytes caps the accepted upload size at 5 MiB.
const maxProfilePicBytes = 5 << 20

// UserHandler handles profile update requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents the profile update payload. Absent fields are
// left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateUser updates the authenticated user's profile
// @Summary     Update profile
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateUserRequest true "Fields to update"
// @Success     200 {object} UserResponse "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /users/me [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(userID, services.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role,
		"profile_pic": user.ProfilePic,
	})
}

// UploadProfilePic sets the authenticated user's profile picture
// @Summary     Upload profile picture
// @Description Accepts a multipart image, fits it into a 256x256 thumbnail, and stores it
// @Tags        users
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       profile_pic formData file true "Image file (JPEG or PNG)"
// @Success     200 {object} map[string]string "Stored picture path"
// @Failure     400 {object} ErrorResponse "Invalid image"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/me/profile-pic [post]
func (h *UserHandler) UploadProfilePic(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("profile_pic")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing profile_pic file"))
		return
	}
	if fileHeader.Size > maxProfilePicBytes {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Image exceeds the 5 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "File is not a supported image"))
		return
	}

	thumb := imaging.Fit(img, profilePicSize, profilePicSize, imaging.Lanczos)

	uploadsDir := config.Get().UploadsDir
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".png" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("%s%s", uuid.New(), ext)
	dest := filepath.Join(uploadsDir, filename)
	if err := imaging.Save(thumb, dest); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	storedPath := "/uploads/" + filename
	user, err := h.userService.SetProfilePic(userID, storedPath)
	if err != nil {
		// Keep the filesystem consistent with the database
		os.Remove(dest)
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_pic": user.ProfilePic})
}
