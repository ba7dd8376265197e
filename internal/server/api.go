package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cellmap/internal/textcell"
	appver "cellmap/internal/version"
)

type renderRequest struct {
	Line        string `json:"line"`
	LeftPadding int    `json:"left_padding"`
	TabWidth    int    `json:"tab_width"`
	MaxCells    int    `json:"max_cells"`
}

type renderResponse struct {
	Cells  string `json:"cells"`
	Length int    `json:"length"`
	// Shared is true when the cells alias the request line.
	Shared bool `json:"shared"`
}

type locateRequest struct {
	Line           string `json:"line"`
	TabWidth       int    `json:"tab_width"`
	Cell           int    `json:"cell"`
	AllowBeyondEnd bool   `json:"allow_beyond_end"`
}

type locateResponse struct {
	Offset    int `json:"offset"`
	Remainder int `json:"remainder"`
}

type displayRequest struct {
	Line     string `json:"line"`
	TabWidth int    `json:"tab_width"`
	Offset   int    `json:"offset"`
}

type displayResponse struct {
	Cell int `json:"cell"`
}

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.POST("/render", s.renderHandler)
	api.POST("/locate", s.locateHandler)
	api.POST("/display", s.displayHandler)
}

func (s *Server) renderHandler(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err))
		return
	}
	if req.LeftPadding < 0 || req.MaxCells < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "left_padding and max_cells must not be negative"})
		return
	}
	line := textcell.NewLine(req.Line)
	var out textcell.Cells
	out.SetLimit(s.CellLimit)
	err := textcell.NewRenderer(s.Classifier).Render(line, req.LeftPadding, req.TabWidth, req.MaxCells, &out)
	switch {
	case errors.Is(err, textcell.ErrTabStride):
		c.JSON(http.StatusBadRequest, errJSON(err))
		return
	case errors.Is(err, textcell.ErrAllocation):
		c.JSON(http.StatusInsufficientStorage, errJSON(err))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, errJSON(err))
		return
	}
	c.JSON(http.StatusOK, renderResponse{
		Cells:  out.String(),
		Length: out.Len(),
		Shared: out.Shares(line),
	})
}

func (s *Server) locateHandler(c *gin.Context) {
	var req locateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err))
		return
	}
	if req.TabWidth < 1 {
		c.JSON(http.StatusBadRequest, errJSON(textcell.ErrTabStride))
		return
	}
	off, rem := textcell.NewMapper(s.Classifier).BufferOffset(textcell.NewLine(req.Line), req.TabWidth, req.Cell, req.AllowBeyondEnd)
	c.JSON(http.StatusOK, locateResponse{Offset: off, Remainder: rem})
}

func (s *Server) displayHandler(c *gin.Context) {
	var req displayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err))
		return
	}
	if req.TabWidth < 1 {
		c.JSON(http.StatusBadRequest, errJSON(textcell.ErrTabStride))
		return
	}
	cell := textcell.NewMapper(s.Classifier).DisplayCell(textcell.NewLine(req.Line), req.TabWidth, req.Offset)
	c.JSON(http.StatusOK, displayResponse{Cell: cell})
}

func errJSON(err error) gin.H { return gin.H{"error": err.Error()} }
