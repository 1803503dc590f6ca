package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Wayfarer resources.
	uriScheme = "wayfarer://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing catalogued countries.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "countries",
		Name:        "countries",
		Description: "List of countries in the visa fact catalogue",
		MIMEType:    "application/json",
	}, s.handleCountriesResource)

	// Template for a single country's fact entry.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "countries/{code}",
		Name:        "country-facts",
		Description: "Full fact entry for a specific country code",
		MIMEType:    "application/json",
	}, s.handleCountryResource)

	// Static resource for the stored user profile.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "profile",
		Name:        "profile",
		Description: "The stored local user profile",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// handleCountriesResource returns the catalogued country names.
func (s *Server) handleCountriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalogue == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	data, err := json.MarshalIndent(s.ports.Catalogue.Countries(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling countries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCountryResource returns the fact entry for one country code.
func (s *Server) handleCountryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalogue == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract the code from a URI like wayfarer://countries/{code}
	code := extractCountryCode(req.Params.URI)
	if code == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Catalogue.Get(code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting country entry: %w", err)
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling country entry: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleProfileResource returns the stored user profile.
func (s *Server) handleProfileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Profile == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	profile, err := s.ports.Profile.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling profile: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCountryCode extracts the code from a URI like wayfarer://countries/{code}.
func extractCountryCode(uri string) string {
	const prefix = uriScheme + "countries/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	code := strings.TrimPrefix(uri, prefix)
	if strings.Contains(code, "/") {
		return ""
	}

	return code
}
