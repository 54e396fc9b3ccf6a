package facade

import "moodgarden/internal/logger"

// LegacyRouter keeps the old namespace names alive for clients that have not
// migrated. Every accessor logs a deprecation warning through the injected
// logger and forwards to the current router.
//
// Deprecated: use Router directly.
type LegacyRouter struct {
	router *Router
	log    *logger.Logger
}

// NewLegacyRouter wraps router with deprecation logging.
func NewLegacyRouter(router *Router, log *logger.Logger) *LegacyRouter {
	return &LegacyRouter{router: router, log: log}
}

// EmotionInput is the pre-rename alias of Input.
//
// Deprecated: use Router.Input.
func (l *LegacyRouter) EmotionInput() *InputFacade {
	l.warn("emotionInput", "input")
	return l.router.Input
}

// MyWebReport is the pre-rename alias of MyWeb.
//
// Deprecated: use Router.MyWeb.
func (l *LegacyRouter) MyWebReport() *MyWebFacade {
	l.warn("myWebReport", "myweb")
	return l.router.MyWeb
}

// FlowerGarden is the pre-rename alias of Flower.
//
// Deprecated: use Router.Flower.
func (l *LegacyRouter) FlowerGarden() *FlowerFacade {
	l.warn("flowerGarden", "flower")
	return l.router.Flower
}

func (l *LegacyRouter) warn(old, current string) {
	if l.log != nil {
		l.log.Warnw("deprecated_facade_namespace", "namespace", old, "use", current)
	}
}
