package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mikeschinkel/jsonpath"
	"github.com/mikeschinkel/jsonpath/provider"
)

// mcpServer exposes the jsonpath engine over MCP stdio as two tools:
// jsonpath_read and jsonpath_exists. It mirrors the teacher's
// mcputil.NewServer/AddTool shape, thinned down to the two operations
// this library provides instead of a general tool-registration framework.
type mcpServer struct {
	srv    *server.MCPServer
	logger *slog.Logger
}

func newServer() *mcpServer {
	logger := jsonpath.GetLogger()
	srv := server.NewMCPServer(
		jsonpath.LibraryName,
		jsonpath.LibraryVersion,
		server.WithToolCapabilities(true),
	)
	m := &mcpServer{srv: srv, logger: logger}
	m.registerTools()
	return m
}

func (m *mcpServer) registerTools() {
	readTool := mcp.NewTool("jsonpath_read",
		mcp.WithDescription("Evaluate a JSONPath expression against a JSON document and return the matched value"),
		mcp.WithString("document", mcp.Required(), mcp.Description("The JSON document text to query")),
		mcp.WithString("path", mcp.Required(), mcp.Description("The JSONPath expression, e.g. $.store.book[0].title")),
		mcp.WithBoolean("throw_on_missing", mcp.Description("Raise an error instead of returning null for a missing property")),
		mcp.WithBoolean("truthiness", mcp.Description("Bare predicate atoms test truthiness instead of mere existence")),
	)
	m.srv.AddTool(readTool, m.handleRead)

	existsTool := mcp.NewTool("jsonpath_exists",
		mcp.WithDescription("Report whether a JSONPath expression matches anything in a JSON document"),
		mcp.WithString("document", mcp.Required(), mcp.Description("The JSON document text to query")),
		mcp.WithString("path", mcp.Required(), mcp.Description("The JSONPath expression")),
	)
	m.srv.AddTool(existsTool, m.handleExists)
}

func (m *mcpServer) handleRead(_ context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	var document, path string
	var throwOnMissing, truthiness bool
	var value any
	var out []byte
	requestID := uuid.NewString()

	document, err = req.RequireString("document")
	if err != nil {
		goto end
	}
	path, err = req.RequireString("path")
	if err != nil {
		goto end
	}
	throwOnMissing = req.GetBool("throw_on_missing", false)
	truthiness = req.GetBool("truthiness", false)

	value, err = readDocument(document, path, throwOnMissing, truthiness)
	if err != nil {
		m.logger.Error("jsonpath_read failed", "request_id", requestID, "error", err)
		result = mcp.NewToolResultError(err.Error())
		err = nil
		goto end
	}

	out, err = jsonpath.Pretty(value)
	if err != nil {
		goto end
	}
	result = mcp.NewToolResultText(string(out))

end:
	return result, err
}

func (m *mcpServer) handleExists(_ context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	var document, path string
	var found bool
	requestID := uuid.NewString()

	document, err = req.RequireString("document")
	if err != nil {
		goto end
	}
	path, err = req.RequireString("path")
	if err != nil {
		goto end
	}

	found, err = existsInDocument(document, path)
	if err != nil {
		m.logger.Error("jsonpath_exists failed", "request_id", requestID, "error", err)
		result = mcp.NewToolResultError(err.Error())
		err = nil
		goto end
	}
	result = mcp.NewToolResultText(fmt.Sprintf("%t", found))

end:
	return result, err
}

func readDocument(document, path string, throwOnMissing, truthiness bool) (value any, err error) {
	var root any
	var cp *jsonpath.CompiledPath
	prov := provider.New()
	opts := []jsonpath.ReadOption{jsonpath.WithProvider(prov)}
	if throwOnMissing {
		opts = append(opts, jsonpath.WithThrowOnMissingProperty())
	}
	if truthiness {
		opts = append(opts, jsonpath.WithTruthinessPredicates())
	}

	root, err = prov.Parse([]byte(document))
	if err != nil {
		goto end
	}
	cp, err = jsonpath.Compile(path)
	if err != nil {
		goto end
	}
	value, err = cp.Read(root, opts...)

end:
	return value, err
}

func existsInDocument(document, path string) (found bool, err error) {
	var root any
	var cp *jsonpath.CompiledPath
	prov := provider.New()

	root, err = prov.Parse([]byte(document))
	if err != nil {
		goto end
	}
	cp, err = jsonpath.Compile(path)
	if err != nil {
		goto end
	}
	found, err = cp.Exists(root, jsonpath.WithProvider(prov))

end:
	return found, err
}

func (m *mcpServer) serveStdio(ctx context.Context) (err error) {
	ctxWithCancel, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		m.logger.Info("jsonpath-mcp: received interrupt signal, shutting down")
		cancel()
	}()

	err = server.ServeStdio(m.srv, server.WithStdioContextFunc(func(ctx context.Context) context.Context {
		return ctxWithCancel
	}))
	return err
}
