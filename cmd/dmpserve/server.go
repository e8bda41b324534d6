// Command dmpserve exposes the diff/match/delta engine over HTTP, behind
// a bearer-token JWT check, mirroring pkg/serve/httpserver's router/auth
// shape from the teacher lineage.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/glyphdiff/dmp/config"
	"github.com/glyphdiff/dmp/modules/dmp"
)

const bearerPrefix = "Bearer "

// Server wraps the diff engine and JWT signing key behind a mux router.
type Server struct {
	engine  *dmp.Engine
	signKey []byte
	srv     *http.Server
}

// Claims is the JWT payload dmpserve issues and verifies. It carries no
// authorization scope beyond "can call this API": the service is a
// stateless diff utility, not a multi-tenant system.
type Claims struct {
	Subject string `json:"sub"`
	jwt.RegisteredClaims
}

func NewServer(listen string, cfg dmp.Config, signKey []byte) *Server {
	s := &Server{engine: dmp.New(cfg), signKey: signKey}
	r := mux.NewRouter()
	r.Use(s.authMiddleware)
	r.HandleFunc("/v1/diff", s.handleDiff).Methods(http.MethodPost)
	r.HandleFunc("/v1/match", s.handleMatch).Methods(http.MethodPost)
	r.HandleFunc("/v1/delta/encode", s.handleDeltaEncode).Methods(http.MethodPost)
	r.HandleFunc("/v1/delta/decode", s.handleDeltaDecode).Methods(http.MethodPost)
	s.srv = &http.Server{
		Addr:         listen,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if len(auth) <= len(bearerPrefix) || auth[:len(bearerPrefix)] != bearerPrefix {
			renderError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenString := auth[len(bearerPrefix):]
		claims := &Claims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.signKey, nil
		})
		switch {
		case errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenNotValidYet):
			renderError(w, http.StatusForbidden, "token expired")
			return
		case err != nil:
			renderError(w, http.StatusForbidden, "invalid token: %v", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func renderError(w http.ResponseWriter, status int, format string, a ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf(format, a...)})
}

type diffRequest struct {
	Text1      string `json:"text1"`
	Text2      string `json:"text2"`
	Checklines bool   `json:"checklines"`
}

type diffResponse struct {
	Diffs []diffSegment `json:"diffs"`
}

type diffSegment struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "malformed request: %v", err)
		return
	}
	diffs, err := s.engine.Diff(r.Context(), req.Text1, req.Text2)
	if err != nil {
		renderError(w, http.StatusUnprocessableEntity, "diff failed: %v", err)
		return
	}
	resp := diffResponse{Diffs: make([]diffSegment, len(diffs))}
	for i, seg := range diffs {
		resp.Diffs[i] = diffSegment{Op: seg.Op.String(), Text: seg.Text}
	}
	writeJSON(w, http.StatusOK, resp)
}

type matchRequest struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
	Loc     int    `json:"loc"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "malformed request: %v", err)
		return
	}
	loc, err := s.engine.Match(req.Text, req.Pattern, req.Loc)
	if err != nil {
		renderError(w, http.StatusUnprocessableEntity, "match failed: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"loc": loc})
}

type deltaEncodeRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

func (s *Server) handleDeltaEncode(w http.ResponseWriter, r *http.Request) {
	var req deltaEncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "malformed request: %v", err)
		return
	}
	diffs, err := s.engine.Diff(r.Context(), req.Text1, req.Text2)
	if err != nil {
		renderError(w, http.StatusUnprocessableEntity, "diff failed: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"delta": diffs.ToDelta()})
}

type deltaDecodeRequest struct {
	Text1 string `json:"text1"`
	Delta string `json:"delta"`
}

func (s *Server) handleDeltaDecode(w http.ResponseWriter, r *http.Request) {
	var req deltaDecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "malformed request: %v", err)
		return
	}
	diffs, err := dmp.FromDelta(req.Text1, req.Delta)
	if err != nil {
		renderError(w, http.StatusUnprocessableEntity, "delta decode failed: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text2": diffs.Text2()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func main() {
	listen := os.Getenv("DMP_LISTEN")
	if listen == "" {
		listen = ":8080"
	}
	signKey := []byte(os.Getenv("DMP_JWT_SECRET"))
	if len(signKey) == 0 {
		logrus.Fatal("DMP_JWT_SECRET must be set")
	}

	cfg := dmp.DefaultConfig()
	if path := os.Getenv("DMP_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logrus.Fatalf("load config %q: %v", path, err)
		}
		cfg = loaded
	}

	s := NewServer(listen, cfg, signKey)
	go func() {
		logrus.Infof("dmpserve listening on %s", listen)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("serve: %v", err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown: %v", err)
	}
}
