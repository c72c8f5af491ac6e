package server

import (
	"fmt"
	"net/http"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/janken/internal/capture"
)

// streamInterval paces the MJPEG stream at ~15 FPS.
const streamInterval = 66 * time.Millisecond

// StreamHandler serves MJPEG frames from the camera so the browser UI can
// show the player their hand during the countdown.
type StreamHandler struct {
	camera capture.Camera
}

// NewStreamHandler creates a new StreamHandler with the given camera.
func NewStreamHandler(camera capture.Camera) *StreamHandler {
	return &StreamHandler{camera: camera}
}

// ServeHTTP streams MJPEG frames to the client until it disconnects.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	for {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		buf, err := encodeFrame(h.camera)
		if err != nil {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", buf.Len())
		w.Write(buf.GetBytes())
		fmt.Fprintf(w, "\r\n")
		buf.Close()

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		time.Sleep(streamInterval)
	}
}

// handleFrame serves a single JPEG frame for quick testing.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	buf, err := encodeFrame(s.config.App.Camera())
	if err != nil {
		http.Error(w, "no frame available", http.StatusServiceUnavailable)
		return
	}
	defer buf.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(buf.GetBytes())
}

// encodeFrame grabs one camera frame and JPEG-encodes it.
func encodeFrame(camera capture.Camera) (*gocv.NativeByteBuffer, error) {
	frame, err := camera.ReadFrame()
	if err != nil {
		return nil, err
	}
	defer frame.Close()

	return gocv.IMEncode(".jpg", *frame)
}
