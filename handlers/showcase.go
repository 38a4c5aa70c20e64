package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"beta_law_site/middleware"
	"beta_law_site/services"
	"beta_law_site/services/showcase"
	"beta_law_site/templates/partials"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

const (
	msgShowcaseUnavailable = "ההמלצות אינן זמינות כרגע"
	msgInvalidShowcaseItem = "חוות הדעת המבוקשת אינה קיימת"
)

// SSE comment interval that keeps proxies from closing an idle stream
var streamKeepAlive = 25 * time.Second

// acquirePlayer returns the visitor's mounted showcase, mounting it on first use
func acquirePlayer(c echo.Context) (*showcase.Player, *showcase.Broadcaster, error) {
	visitorID := middleware.GetVisitorID(c)
	if visitorID == "" {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "missing visitor id")
	}
	if services.Showcases == nil {
		return nil, nil, echo.NewHTTPError(http.StatusServiceUnavailable, msgShowcaseUnavailable)
	}

	player, hub, err := services.Showcases.Acquire(visitorID)
	if err != nil {
		c.Logger().Warnf("Failed to mount showcase for visitor %s: %v", visitorID, err)
		return nil, nil, echo.NewHTTPError(http.StatusServiceUnavailable, msgShowcaseUnavailable)
	}
	return player, hub, nil
}

// remountShowcase unmounts the visitor's previous player and returns the
// state of a fresh mount for a full page load. The player itself is mounted
// by the page's stream or the visitor's first action.
func remountShowcase(c echo.Context) (showcase.State, error) {
	if services.Showcases == nil {
		return showcase.State{}, echo.NewHTTPError(http.StatusServiceUnavailable, msgShowcaseUnavailable)
	}
	if visitorID := middleware.GetVisitorID(c); visitorID != "" {
		services.Showcases.Unmount(visitorID)
	}
	return services.Showcases.InitialState(), nil
}

// showcaseAction applies one user action to the visitor's player and answers
// with the updated fragment. A player unmounted by the idle sweep between
// acquire and action is remounted once.
func showcaseAction(c echo.Context, action func(*showcase.Player) (showcase.State, error)) error {
	for attempt := 0; ; attempt++ {
		player, _, err := acquirePlayer(c)
		if err != nil {
			return err
		}

		state, err := action(player)
		switch {
		case err == nil:
			noStore(c)
			return render(c, http.StatusOK, showcaseFragment(state))
		case errors.Is(err, showcase.ErrDisposed) && attempt == 0:
			continue
		case errors.Is(err, showcase.ErrIndexOutOfRange):
			return echo.NewHTTPError(http.StatusBadRequest, msgInvalidShowcaseItem)
		default:
			c.Logger().Errorf("Showcase action failed: %v", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, msgShowcaseUnavailable)
		}
	}
}

func showcaseFragment(state showcase.State) templ.Component {
	return partials.Fragment(partials.ShowcaseSlide(state))
}

// ShowcaseFragmentHandler returns the visitor's current slide
func ShowcaseFragmentHandler(c echo.Context) error {
	player, _, err := acquirePlayer(c)
	if err != nil {
		return err
	}
	noStore(c)
	return render(c, http.StatusOK, showcaseFragment(player.State()))
}

func ShowcasePrevHandler(c echo.Context) error {
	return showcaseAction(c, (*showcase.Player).Prev)
}

func ShowcaseNextHandler(c echo.Context) error {
	return showcaseAction(c, (*showcase.Player).Next)
}

// ShowcasePauseHandler is triggered by the pointer entering the showcase
func ShowcasePauseHandler(c echo.Context) error {
	return showcaseAction(c, (*showcase.Player).Pause)
}

// ShowcaseResumeHandler is triggered by the pointer leaving the showcase
func ShowcaseResumeHandler(c echo.Context) error {
	return showcaseAction(c, (*showcase.Player).Resume)
}

func ShowcaseSelectHandler(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidShowcaseItem)
	}
	return showcaseAction(c, func(p *showcase.Player) (showcase.State, error) {
		return p.Select(index)
	})
}

// ShowcaseStreamHandler pushes the visitor's slide over SSE whenever it
// changes, starting with the current one. The stream ends when the client
// goes away or the visitor's showcase is unmounted. A client going away
// unmounts the showcase.
func ShowcaseStreamHandler(c echo.Context) error {
	player, hub, err := acquirePlayer(c)
	if err != nil {
		return err
	}
	visitorID := middleware.GetVisitorID(c)
	registry := services.Showcases
	defer registry.Release(visitorID, player)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	ctx := c.Request().Context()
	send := func() {
		writeSSE(res, showcase.EventChanged, renderToString(c, showcaseFragment(player.State())))
		res.Flush()
	}
	send()

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-sub:
			if !ok {
				return nil
			}
			send()
		case <-keepAlive.C:
			registry.Touch(visitorID)
			_, _ = res.Write([]byte(": keepalive\n\n"))
			res.Flush()
		}
	}
}

func renderToString(c echo.Context, component templ.Component) string {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		c.Logger().Errorf("Failed to render stream fragment: %v", err)
	}
	return buf.String()
}

func writeSSE(w *echo.Response, event string, data string) {
	_, _ = w.Write([]byte("event: " + event + "\n"))
	for _, line := range strings.Split(data, "\n") {
		_, _ = w.Write([]byte("data: " + line + "\n"))
	}
	_, _ = w.Write([]byte("\n"))
}
