package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>formbridge — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the service routes.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "formbridge", "version": "v0.1.0" },
  "paths": {
    "/api": {
      "get": { "summary": "Read the static catalog file", "responses": { "200": { "description": "JSON array of catalog entries" }, "500": { "description": "catalog file malformed" } } }
    },
    "/": {
      "get": { "summary": "Render the contact form", "responses": { "200": { "description": "HTML form" } } }
    },
    "/submit": {
      "post": {
        "summary": "Submit the contact form",
        "requestBody": { "content": { "application/x-www-form-urlencoded": { "schema": {"type":"object","properties":{"name":{"type":"string"},"email":{"type":"string"},"message":{"type":"string"}}}}}},
        "responses": { "302": { "description": "stored; redirect to /success" }, "400": { "description": "validation failed; form re-rendered" }, "500": { "description": "configuration or datastore error; form re-rendered" } }
      }
    },
    "/success": { "get": { "summary": "Render the success page", "responses": { "200": { "description": "HTML page" } } } },
    "/api/submissions": { "get": { "summary": "List stored submissions (admin token required)", "responses": { "200": { "description": "JSON array" }, "401": { "description": "missing or invalid token" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
