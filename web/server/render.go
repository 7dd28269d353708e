package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-simple-raytracer/pkg/annotate"
	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
	"github.com/df07/go-simple-raytracer/pkg/scene"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// RenderResult is the payload of the "complete" SSE event
type RenderResult struct {
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// renderScene renders the requested scene and applies the optional caption
func (s *Server) renderScene(req *RenderRequest, logger core.Logger) (*image.RGBA, *scene.Scene, renderer.RenderStats, error) {
	sceneObj, err := s.createScene(req)
	if err != nil {
		return nil, nil, renderer.RenderStats{}, err
	}

	img, stats, err := sceneObj.Render(logger)
	if err != nil {
		return nil, nil, stats, err
	}

	if req.Caption {
		annotate.Caption(img, fmt.Sprintf("%s  %dx%d  %v", sceneObj.Name, sceneObj.Width, sceneObj.Height,
			stats.Duration.Round(time.Millisecond)))
	}
	return img, sceneObj, stats, nil
}

// handleRender renders a scene and responds with the PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
		return
	}

	img, _, stats, err := s.renderScene(req, log.Default())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to encode image: " + err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

// handleRenderStream renders a scene, streaming console output via SSE and
// finishing with a "complete" event that carries the image
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine owns the ResponseWriter
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(ctx, w, sseEventChan)
		close(writerDone)
	}()

	consoleChan, webLogger := s.setupConsoleLogging()
	streamerDone := make(chan struct{})
	go func() {
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
		close(streamerDone)
	}()

	// Drain console output before the final event so it arrives last
	finish := func(event SSEEvent) {
		close(consoleChan)
		<-streamerDone
		select {
		case sseEventChan <- event:
		case <-ctx.Done():
		}
		close(sseEventChan)
		<-writerDone
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		finish(SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	img, sceneObj, stats, err := s.renderScene(req, webLogger)
	if err != nil {
		finish(SSEEvent{Type: "error", Data: err.Error()})
		return
	}

	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		finish(SSEEvent{Type: "error", Data: fmt.Sprintf("failed to encode image: %v", err)})
		return
	}

	data, err := json.Marshal(RenderResult{
		Scene:     sceneObj.Name,
		Width:     sceneObj.Width,
		Height:    sceneObj.Height,
		ImageData: imageData,
		Stats:     toStats(stats),
	})
	if err != nil {
		finish(SSEEvent{Type: "error", Data: err.Error()})
		return
	}

	finish(SSEEvent{Type: "complete", Data: string(data)})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents writes events until the channel is closed or the client disconnects
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			return
		}
	}
}

// streamConsoleMessages forwards console messages as SSE events until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for {
		select {
		case consoleMsg, ok := <-consoleChan:
			if !ok {
				return
			}

			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			case <-ctx.Done():
				return
			default:
				// Channel full, skip message to avoid blocking
			}

		case <-ctx.Done():
			return
		}
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		PixelsHit:      stats.PixelsHit,
		PrimaryRays:    stats.PrimaryRays,
		ShadowRays:     stats.ShadowRays,
		ReflectionRays: stats.ReflectionRays,
		DepthLimitHits: stats.DepthLimitHits,
		ElapsedMs:      stats.Duration.Milliseconds(),
	}
}
