package handler

import (
	"io"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mochwana/aesi-web/internal/service"
)

// render draws a template with the consumed flash messages merged in.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	session := sessions.Default(c)
	data["SuccessFlashes"] = session.Flashes("success")
	data["ErrorFlashes"] = session.Flashes("error")
	_ = session.Save()
	c.HTML(status, name, data)
}

// flashSuccess queues a success notice for the next rendered page.
func flashSuccess(c *gin.Context, message string) {
	addFlash(c, "success", message)
}

// flashError queues an error notice for the next rendered page.
func flashError(c *gin.Context, message string) {
	addFlash(c, "error", message)
}

func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	_ = session.Save()
}

// optionalUpload reads the named multipart file when one was submitted,
// returning nil for an absent field or empty filename.
func optionalUpload(c *gin.Context, field string) (*service.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil || header.Filename == "" {
		return nil, nil
	}
	return readUpload(c, field)
}

// requireUpload reads the named multipart file, distinguishing a missing
// field and an empty filename from a readable payload. Both absence
// cases surface as ok=false so upload routes can short-circuit with a
// "no file selected" notice before any further validation.
func requireUpload(c *gin.Context, field string) (up *service.Upload, ok bool, err error) {
	header, err := c.FormFile(field)
	if err != nil || header.Filename == "" {
		return nil, false, nil
	}
	upload, err := readUpload(c, field)
	if err != nil {
		return nil, true, err
	}
	return upload, true, nil
}

func readUpload(c *gin.Context, field string) (*service.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &service.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Data:     data,
	}, nil
}
