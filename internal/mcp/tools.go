package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchProductsTool defines the search_products MCP tool.
var searchProductsTool = mcp.NewTool("search_products",
	mcp.WithDescription("Search the FreshNutrients product catalog by product name or free text. Returns matching products with crop, application and document links."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Product name or free-text search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// recommendProductsTool defines the recommend_products MCP tool.
var recommendProductsTool = mcp.NewTool("recommend_products",
	mcp.WithDescription("Recommend products for a farming question. Extracts crop, problem and application type from the message and resolves matching catalog entries. When the question lacks detail, returns the follow-up question to ask."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The farmer's question, e.g. 'what should I use for aphids on tomatoes?'"),
	),
	mcp.WithString("crop",
		mcp.Description("Known crop, overrides anything extracted from the message"),
	),
	mcp.WithString("problem",
		mcp.Description("Known problem, overrides anything extracted from the message"),
	),
	mcp.WithString("application_type",
		mcp.Description("Known application type, overrides anything extracted from the message"),
		mcp.Enum("Foliar Application", "Soil Application", "Water Application"),
	),
)

// listCropsTool defines the list_crops MCP tool.
var listCropsTool = mcp.NewTool("list_crops",
	mcp.WithDescription("List every crop the product catalog covers."),
)

// listProblemsTool defines the list_problems MCP tool.
var listProblemsTool = mcp.NewTool("list_problems",
	mcp.WithDescription("List every problem category the product catalog covers."),
)
