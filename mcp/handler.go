package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/legcowatch/agenda-mcp/agenda"
	"github.com/legcowatch/agenda-mcp/service"
	"github.com/legcowatch/agenda-mcp/service/vo"
)

const Version = "0.1.0"

type ParseAgendaRequest struct {
	ID   string `json:"id"`   // Document id; its last character marks the language
	HTML string `json:"html"` // Agenda markup
}

type FetchAgendaRequest struct {
	URL string `json:"url"` // Where to download the agenda from
	ID  string `json:"id"`  // Optional document id, defaults to the URL file name
}

type AgendaResponse struct {
	Agenda vo.Agenda `json:"agenda"`
}

type ClassifyHeaderRequest struct {
	Header string `json:"header"`
}

type ClassifyHeaderResponse struct {
	IsHeader   bool       `json:"isHeader"`
	Section    vo.Section `json:"section"`
	Recognized bool       `json:"recognized"`
}

// NewServer creates a new MCP server exposing the agenda parser
func NewServer(logger *zap.Logger, serviceInstance service.Service) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if serviceInstance == nil {
		serviceInstance = service.NewService(logger, service.Settings{}, nil)
	}

	s := server.NewMCPServer(
		"LegCo Agenda MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	parseTool := mcp.NewTool("parseAgenda",
		mcp.WithDescription("Parse a Legislative Council agenda into tabled papers, questions and bills"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Document id ending in 'e' for English or 'c' for Chinese, e.g. cm20140115e"),
		),
		mcp.WithString("html",
			mcp.Required(),
			mcp.Description("The agenda as HTML"),
		),
	)
	s.AddTool(parseTool, mcp.NewTypedToolHandler(getParseAgendaHandler(logger, serviceInstance)))

	fetchTool := mcp.NewTool("fetchAgenda",
		mcp.WithDescription("Download a Legislative Council agenda and parse it"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the agenda HTML"),
		),
		mcp.WithString("id",
			mcp.Description("Document id; defaults to the file name in the URL"),
		),
	)
	s.AddTool(fetchTool, mcp.NewTypedToolHandler(getFetchAgendaHandler(logger, serviceInstance)))

	classifyTool := mcp.NewTool("classifyHeader",
		mcp.WithDescription("Classify an agenda section header such as 'II. Questions'"),
		mcp.WithString("header",
			mcp.Required(),
			mcp.Description("The header text"),
		),
	)
	s.AddTool(classifyTool, mcp.NewTypedToolHandler(classifyHeaderHandler))

	return s
}

func getParseAgendaHandler(logger *zap.Logger, serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args ParseAgendaRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ParseAgendaRequest) (*mcp.CallToolResult, error) {
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		if args.HTML == "" {
			return mcp.NewToolResultError("html is required"), nil
		}
		logToolCall(ctx, logger, "parseAgenda", zap.String("document", args.ID))

		doc, err := serviceInstance.ParseAgenda(ctx, args.ID, args.HTML)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse agenda: %v", err)), nil
		}
		return agendaResult(doc)
	}
}

func getFetchAgendaHandler(logger *zap.Logger, serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args FetchAgendaRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args FetchAgendaRequest) (*mcp.CallToolResult, error) {
		if args.URL == "" {
			return mcp.NewToolResultError("url is required"), nil
		}
		logToolCall(ctx, logger, "fetchAgenda", zap.String("url", args.URL))

		doc, err := serviceInstance.FetchAgenda(ctx, args.ID, args.URL)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch agenda: %v", err)), nil
		}
		return agendaResult(doc)
	}
}

func classifyHeaderHandler(ctx context.Context, request mcp.CallToolRequest, args ClassifyHeaderRequest) (*mcp.CallToolResult, error) {
	if args.Header == "" {
		return mcp.NewToolResultError("header is required"), nil
	}

	header := agenda.Normalize(args.Header)
	section, ok := agenda.ClassifyHeader(header)
	return jsonResult(ClassifyHeaderResponse{
		IsHeader:   agenda.IsHeader(header),
		Section:    section,
		Recognized: ok,
	})
}

func agendaResult(doc *agenda.Document) (*mcp.CallToolResult, error) {
	return jsonResult(AgendaResponse{Agenda: doc.Agenda()})
}

func jsonResult(response any) (*mcp.CallToolResult, error) {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseBytes)), nil
}

func logToolCall(ctx context.Context, logger *zap.Logger, tool string, fields ...zap.Field) {
	fields = append(fields, zap.String("tool", tool))
	if req, ok := httpRequestFromContext(ctx); ok {
		fields = append(fields, zap.String("remoteAddr", req.RemoteAddr))
	}
	logger.Info("tool call", fields...)
}
