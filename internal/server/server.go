package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/time/rate"

	"github.com/sngm3741/fitness-directory/api/internal/config"
	"github.com/sngm3741/fitness-directory/api/internal/infrastructure/memory"
	commonhttp "github.com/sngm3741/fitness-directory/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/fitness-directory/api/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/fitness-directory/api/internal/public/application"
)

// janitorInterval は期限切れ比較セッションを掃除する間隔。
const janitorInterval = time.Minute

// Server は HTTP サーバーのライフサイクルを管理し、Public ハンドラへ依存注入するコンポジションルート。
// DDD の Interface 層に相当し、アプリケーションサービスをルータへ接続する責務を担う。
type Server struct {
	logger          *log.Logger
	client          *mongo.Client
	catalog         *publicapp.Catalog
	businessQueries publicapp.BusinessQueryService
	compareService  publicapp.CompareService
	sessions        *memory.CompareSessionStore
	tokens          *commonhttp.SessionTokens
	suggestLimiter  *rate.Limiter
	addr            string
	allowedOrigins  []string
}

// New は Config とロード済みカタログを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
// client は DATA_SOURCE=mongo のときのみ非 nil で、ヘルスチェックと終了時の切断に使う。
func New(cfg config.Config, catalog *publicapp.Catalog, client *mongo.Client) *Server {
	sessions := memory.NewCompareSessionStore(cfg.CompareSession.TTL)
	return &Server{
		logger:          cfg.ServerLog,
		client:          client,
		catalog:         catalog,
		businessQueries: publicapp.NewBusinessQueryService(catalog),
		compareService:  publicapp.NewCompareService(catalog, sessions),
		sessions:        sessions,
		tokens:          commonhttp.NewSessionTokens(cfg.CompareSession.Secret, cfg.CompareSession.Issuer),
		suggestLimiter:  rate.NewLimiter(rate.Limit(cfg.SuggestRateLimit), cfg.SuggestBurst),
		addr:            cfg.Addr,
		allowedOrigins:  append([]string(nil), cfg.AllowedOrigins...),
	}
}

// Router はミドルウェアと全ルートを組み立てたハンドラを返す。
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/health", s.healthHandler())
	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:     s.logger,
		Businesses: s.businessQueries,
		Compare:    s.compareService,
		Tokens:     s.tokens,
	})
	router.Route("/api", func(r chi.Router) {
		publicHandler.Register(r, s.compareSessionMiddleware, s.rateLimit(s.suggestLimiter))
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		commonhttp.WriteError(s.logger, w, http.StatusNotFound, "Route not found", "")
	})
	return router
}

// Run はHTTPサーバーを起動し、シグナル受信まで待機する。
// インフラ初期化に限定し、ドメインロジックをここに書かないことで層の責務を守る。
func (s *Server) Run() error {
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go s.sessions.RunJanitor(janitorCtx, janitorInterval, func(n int) {
		s.logger.Printf("期限切れ比較セッションを %d 件削除しました", n)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s (businesses=%d)", s.addr, s.catalog.Len())
		errChan <- httpServer.ListenAndServe()
	}()

	return waitForShutdown(httpServer, errChan, s)
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler は MongoDB 利用時のみ疎通確認を行い、監視系からのヘルスチェック要求に応える。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if s.client != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
				commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]any{
			"status":     "ok",
			"businesses": s.catalog.Len(),
			"sessions":   s.sessions.Len(),
			"time":       time.Now().Format(time.RFC3339),
		})
	}
}

// compareSessionMiddleware は Authorization ヘッダーの比較セッショントークンを検証し、セッション ID をコンテキストへ詰める。
func (s *Server) compareSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := commonhttp.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "Bearer トークンを指定してください", err.Error())
			return
		}

		sessionID, err := s.tokens.Parse(raw)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "アクセストークンが無効です", err.Error())
			return
		}

		ctx := commonhttp.ContextWithSession(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimit は limiter のトークンが尽きたリクエストを 429 で拒否するミドルウェアを返す。
func (s *Server) rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				commonhttp.WriteError(s.logger, w, http.StatusTooManyRequests, "Too many requests", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断し、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown(ctx context.Context) {
	if s.client == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
	return runErr
}
