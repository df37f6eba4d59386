package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feebank/internal/auth"
	"feebank/internal/models"
	"feebank/internal/portal"
)

func (h *Handler) studentID(c *gin.Context) (string, bool) {
	session, ok := auth.SessionFromContext(c)
	if !ok || session.StudentID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return "", false
	}
	return session.StudentID, true
}

// respond renders a portal view or maps its error to a status code.
func (h *Handler) respond(c *gin.Context, status int, view any, err error) {
	if err == nil {
		c.JSON(status, view)
		return
	}
	var verr *portal.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, portal.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "student records not found"})
	default:
		h.logger.Error("portal request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load portal data failed"})
	}
}

func (h *Handler) dashboard(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Dashboard(c.Request.Context(), id)
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) student(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Student(c.Request.Context(), id)
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) fees(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Fees(c.Request.Context(), id)
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) transactions(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Transactions(c.Request.Context(), id, portal.TransactionFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) attendance(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Attendance(c.Request.Context(), id, c.Query("month"))
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) timetable(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	offset := 0
	if raw := c.Query("week"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week offset"})
			return
		}
		offset = n
	}
	view, err := h.portal.Timetable(c.Request.Context(), id, offset)
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) lectures(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Lectures(c.Request.Context(), id, portal.LectureFilter{
		SubjectCode: c.Query("subject"),
		Search:      c.Query("search"),
	})
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) assignments(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Assignments(c.Request.Context(), id, portal.AssignmentFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) updates(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Updates(c.Request.Context(), id, portal.UpdateFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	})
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) feedback(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Feedback(c.Request.Context(), id, portal.FeedbackFilter{
		Subject: c.Query("subject"),
		Search:  c.Query("search"),
	})
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) submitFeedback(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	var req models.Feedback
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	fb, err := h.portal.SubmitFeedback(c.Request.Context(), id, req)
	h.respond(c, http.StatusCreated, fb, err)
}

func (h *Handler) undertakings(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	view, err := h.portal.Undertakings(c.Request.Context(), id, c.Query("status"))
	h.respond(c, http.StatusOK, view, err)
}

func (h *Handler) submitUndertaking(c *gin.Context) {
	id, ok := h.studentID(c)
	if !ok {
		return
	}
	var req models.AttendanceUndertaking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	u, err := h.portal.SubmitUndertaking(c.Request.Context(), id, req)
	h.respond(c, http.StatusCreated, u, err)
}
