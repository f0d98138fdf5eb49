package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/agentbridge/agentbridge/internal/device"
	"github.com/agentbridge/agentbridge/internal/device/adb"
	"github.com/agentbridge/agentbridge/internal/session"
	"github.com/agentbridge/agentbridge/internal/version"
)

// mcpServer wraps the MCP server around one long-lived device session, so
// element ids assigned by a scan survive across tool calls.
type mcpServer struct {
	sess   *session.Session
	sessMu sync.Mutex
	mcp    *mcpserver.MCPServer
}

func newMCPServer(serial string) (*mcpServer, error) {
	s := &mcpServer{
		sess: session.New(adb.New(serial)),
	}
	s.mcp = mcpserver.NewMCPServer("agentbridge", version.Version)
	s.registerTools()
	return s, nil
}

func (s *mcpServer) serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("scan",
			mcp.WithDescription("Scan the device screen and list interactive UI elements with numeric ids, class, text, bounds, and interaction flags. Ids stay valid until the next scan."),
			mcp.WithBoolean("all", mcp.Description("Include all elements, not just interactive ones")),
		),
		s.handleScan,
	)

	s.mcp.AddTool(
		mcp.NewTool("tap",
			mcp.WithDescription("Tap an element by id from the last scan"),
			mcp.WithNumber("id", mcp.Description("Element id"), mcp.Required()),
			mcp.WithBoolean("long", mcp.Description("Perform a long press")),
			mcp.WithNumber("duration", mcp.Description("Long press duration in ms (default: 500)")),
		),
		s.handleTap,
	)

	s.mcp.AddTool(
		mcp.NewTool("type",
			mcp.WithDescription("Type text into an element by id. Taps the element to focus it first."),
			mcp.WithNumber("id", mcp.Description("Element id"), mcp.Required()),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
			mcp.WithBoolean("clear", mcp.Description("Clear existing text before typing")),
			mcp.WithBoolean("enter", mcp.Description("Press Enter after typing")),
		),
		s.handleType,
	)

	s.mcp.AddTool(
		mcp.NewTool("scroll",
			mcp.WithDescription("Scroll the screen in a direction via a centered swipe"),
			mcp.WithString("direction", mcp.Description("Scroll direction: up, down, left, right"), mcp.Required()),
			mcp.WithNumber("distance", mcp.Description("Fraction of screen to scroll (default: 0.5)")),
			mcp.WithNumber("duration", mcp.Description("Swipe duration in ms (default: 300)")),
		),
		s.handleScroll,
	)

	s.mcp.AddTool(
		mcp.NewTool("key",
			mcp.WithDescription("Press a named key: home, back, enter, menu, recent, volume_up, volume_down, power"),
			mcp.WithString("name", mcp.Description("Key name"), mcp.Required()),
		),
		s.handleKey,
	)

	s.mcp.AddTool(
		mcp.NewTool("wait",
			mcp.WithDescription("Rescan until an element with given text or resource id appears (or disappears with gone)"),
			mcp.WithString("text", mcp.Description("Substring of element text or description")),
			mcp.WithString("res", mcp.Description("Resource id to wait for")),
			mcp.WithBoolean("gone", mcp.Description("Wait until the condition is NO LONGER true")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: 30)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: 500)")),
		),
		s.handleWait,
	)

	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Capture the device screen as a scaled-down JPEG"),
			mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100 (default: 80)")),
			mcp.WithNumber("scale", mcp.Description("Scale factor 0.1-1.0 (default: 0.5)")),
		),
		s.handleScreenshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("info",
			mcp.WithDescription("Get device serial, screen size, and current foreground app"),
		),
		s.handleInfo,
	)
}

// resultToText serializes a result struct to YAML for MCP responses.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal result: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleScan(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	includeAll := boolParam(params, "all", false)

	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	elements, err := s.sess.Scan(includeAll)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(elements)), nil
}

func (s *mcpServer) handleTap(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id, ok := requireIntParam(params, "id")
	if !ok {
		return mcp.NewToolResultError("id is required"), nil
	}

	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	x, y, err := s.sess.CenterOf(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	action := "tap"
	if boolParam(params, "long", false) {
		action = "long_press"
		ms := intParam(params, "duration", 500)
		err = s.sess.Device().LongPress(x, y, time.Duration(ms)*time.Millisecond)
	} else {
		err = s.sess.Device().Tap(x, y)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(TapResult{
		Action: action, ElementID: id, X: x, Y: y, Success: true,
	})), nil
}

func (s *mcpServer) handleType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	_, ok := requireIntParam(params, "id")
	if !ok {
		return mcp.NewToolResultError("id is required"), nil
	}
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	result, err := executeTypeStep(s.sess, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	result, err := executeScrollStep(s.sess, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleKey(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	result, err := executeKeyStep(s.sess, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleWait(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	result, err := executeWaitStep(s.sess, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleScreenshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	quality := intParam(params, "quality", 80)
	scale := floatParam(params, "scale", 0.5)

	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	data, err := s.sess.Device().Screenshot(device.ScreenshotOptions{
		Format:  "jpg",
		Quality: quality,
		Scale:   scale,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultImage("screenshot", base64.StdEncoding.EncodeToString(data), "image/jpeg"), nil
}

func (s *mcpServer) handleInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()

	dev := s.sess.Device()
	info, err := dev.Info()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	w, h, err := dev.WindowSize()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	app, err := dev.CurrentApp()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(InfoResult{
		Serial:     info.Serial,
		Screen:     Screen{Width: w, Height: h},
		CurrentApp: app,
	})), nil
}
