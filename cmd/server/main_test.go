package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"contrib-credit/internal/tools"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "memory_backend": false})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestToolsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/tools", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tools": tools.GetContributorTools()})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tools", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Tools []struct {
			Function struct {
				Name string `json:"name"`
			} `json:"function"`
		} `json:"tools"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Tools, 2)
	assert.Equal(t, tools.ToolContributorLookup, response.Tools[0].Function.Name)
}

func TestInvokeEndpoint_InvalidRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint mirroring the invoke route's binding
	router.POST("/api/tools/:name", func(c *gin.Context) {
		var req struct {
			Arguments map[string]interface{} `json:"arguments"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// Malformed body
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/tools/contributor_lookup", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
