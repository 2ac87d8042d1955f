package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/componentd/internal/catalog"
)

// ===== INPUT/OUTPUT TYPES =====

type listInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter to a specific category (e.g. Buttons, Cards, Overlays)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum components to return (default: all)"`
}

type listOutput struct {
	Total      int                        `json:"total" jsonschema:"Total matching components before truncation"`
	Components []catalog.ComponentSummary `json:"components" jsonschema:"Component summaries in crawl order"`
}

type searchInput struct {
	Query string `json:"query" jsonschema:"required,Free-text query matched against name, category, tags and description"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default: 10)"`
}

type searchMatch struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Score         int      `json:"score"`
	MatchedFields []string `json:"matched_fields"`
}

type searchOutput struct {
	Query   string        `json:"query" jsonschema:"The query as searched"`
	Results []searchMatch `json:"results" jsonschema:"Ranked matches, best first"`
	Count   int           `json:"count" jsonschema:"Number of results returned"`
	Message string        `json:"message,omitempty" jsonschema:"Set when no component matched"`
}

type getCodeInput struct {
	Name            string `json:"name" jsonschema:"required,Component name, e.g. AnimatedButton"`
	IncludeMetadata bool   `json:"include_metadata,omitempty" jsonschema:"Also return the component's metadata"`
}

type getCodeOutput struct {
	Found       bool                   `json:"found"`
	Name        string                 `json:"name,omitempty"`
	Path        string                 `json:"path,omitempty"`
	Code        string                 `json:"code,omitempty"`
	Metadata    *catalog.ComponentInfo `json:"metadata,omitempty"`
	Suggestions []string               `json:"suggestions,omitempty" jsonschema:"Similar component names when not found"`
	Message     string                 `json:"message,omitempty"`
}

type getByCategoryInput struct {
	Category string `json:"category" jsonschema:"required,Category name, e.g. Buttons"`
}

type getByCategoryOutput struct {
	Found           bool                       `json:"found"`
	Category        string                     `json:"category"`
	Components      []catalog.ComponentSummary `json:"components,omitempty"`
	Count           int                        `json:"count"`
	KnownCategories []string                   `json:"known_categories,omitempty" jsonschema:"Available categories when the requested one is unknown"`
	Message         string                     `json:"message,omitempty"`
}

type getInfoInput struct {
	Name string `json:"name" jsonschema:"required,Component name"`
}

type getInfoOutput struct {
	Found       bool                   `json:"found"`
	Component   *catalog.ComponentInfo `json:"component,omitempty"`
	Suggestions []string               `json:"suggestions,omitempty"`
	Message     string                 `json:"message,omitempty"`
}

type listCategoriesInput struct{}

type listCategoriesOutput struct {
	Categories []catalog.CategorySummary `json:"categories"`
	Count      int                       `json:"count"`
}

type refreshInput struct{}

type refreshOutput struct {
	Components int   `json:"components" jsonschema:"Record count after the refresh"`
	Previous   int   `json:"previous" jsonschema:"Record count before the refresh"`
	DurationMS int64 `json:"duration_ms"`
}

// ===== TOOL REGISTRATION =====

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_components",
		Description: "List available UI components with name, category, description and tags. Optionally filter by category.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listInput) (*mcp.CallToolResult, listOutput, error) {
		result, err := s.catalog.List(ctx, args.Category, args.Limit)
		if err != nil {
			s.logger.Error("list_components failed", zap.Error(err))
			return nil, listOutput{}, err
		}
		return nil, listOutput{Total: result.Total, Components: result.Components}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_components",
		Description: "Search components by free text. Matches name, category, tags and description; results are ranked by relevance.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args searchInput) (*mcp.CallToolResult, searchOutput, error) {
		results, err := s.catalog.SearchComponents(ctx, args.Query, args.Limit)
		if err != nil {
			return nil, searchOutput{}, err
		}

		out := searchOutput{Query: args.Query, Count: len(results)}
		for _, r := range results {
			out.Results = append(out.Results, searchMatch{
				Name:          r.Record.Name,
				Category:      r.Record.Category,
				Description:   r.Record.Description,
				Score:         r.Score,
				MatchedFields: r.MatchedFields,
			})
		}
		if len(results) == 0 {
			out.Message = fmt.Sprintf("no components matched %q", args.Query)
		}
		return nil, out, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_component_code",
		Description: "Get a component's full source code by name, optionally with its metadata. Unknown names return up to 5 similar names.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getCodeInput) (*mcp.CallToolResult, getCodeOutput, error) {
		result, err := s.catalog.GetCode(ctx, args.Name, args.IncludeMetadata)
		if err != nil {
			var nf *catalog.NotFoundError
			if errors.As(err, &nf) {
				return nil, getCodeOutput{
					Found:       false,
					Suggestions: nf.Suggestions,
					Message:     nf.Error(),
				}, nil
			}
			return nil, getCodeOutput{}, err
		}
		return nil, getCodeOutput{
			Found:    true,
			Name:     result.Name,
			Path:     result.Path,
			Code:     result.Code,
			Metadata: result.Metadata,
		}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_components_by_category",
		Description: "Get all components in a category. Unknown categories return the list of known categories.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getByCategoryInput) (*mcp.CallToolResult, getByCategoryOutput, error) {
		components, err := s.catalog.GetByCategory(ctx, args.Category)
		if err != nil {
			var nf *catalog.NotFoundError
			if errors.As(err, &nf) {
				return nil, getByCategoryOutput{
					Found:           false,
					Category:        args.Category,
					KnownCategories: nf.Suggestions,
					Message:         nf.Error(),
				}, nil
			}
			return nil, getByCategoryOutput{}, err
		}
		return nil, getByCategoryOutput{
			Found:      true,
			Category:   args.Category,
			Components: components,
			Count:      len(components),
		}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_component_info",
		Description: "Get a component's full metadata: category, description, tags, dependencies, path and size.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getInfoInput) (*mcp.CallToolResult, getInfoOutput, error) {
		component, err := s.catalog.GetInfo(ctx, args.Name)
		if err != nil {
			var nf *catalog.NotFoundError
			if errors.As(err, &nf) {
				return nil, getInfoOutput{
					Found:       false,
					Suggestions: nf.Suggestions,
					Message:     nf.Error(),
				}, nil
			}
			return nil, getInfoOutput{}, err
		}
		return nil, getInfoOutput{Found: true, Component: component}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_categories",
		Description: "List all component categories with counts.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listCategoriesInput) (*mcp.CallToolResult, listCategoriesOutput, error) {
		categories, err := s.catalog.Categories(ctx)
		if err != nil {
			return nil, listCategoriesOutput{}, err
		}
		return nil, listCategoriesOutput{Categories: categories, Count: len(categories)}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "refresh_registry",
		Description: "Force a re-crawl of the component repository, bypassing the cache TTL.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args refreshInput) (*mcp.CallToolResult, refreshOutput, error) {
		result, err := s.catalog.Refresh(ctx)
		if err != nil {
			s.logger.Error("refresh_registry failed", zap.Error(err))
			return nil, refreshOutput{}, err
		}
		return nil, refreshOutput{
			Components: result.Components,
			Previous:   result.Previous,
			DurationMS: result.Duration.Milliseconds(),
		}, nil
	})
}
