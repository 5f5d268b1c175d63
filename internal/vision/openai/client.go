package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/vision"
)

// RequestStructuredExtraction implements vision.Extractor against the OpenAI
// chat/completions vision endpoint. The rendered page image rides along as a
// data-URL content block; the response is schema-validated before anything
// downstream sees it. Every failure surfaces as *common.AIVisionError, the
// traditional result is never silently substituted.
func (c *Client) RequestStructuredExtraction(ctx context.Context, req vision.ExtractRequest) (vision.ExtractResponse, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("vision.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image", req.PageImagePath,
		"room_count_hint", req.ExpectedRoomCount,
	)

	dataURL, err := vision.ReadAsDataURL(req.PageImagePath)
	if err != nil {
		c.log.Error("vision.extract.image_error", "req_id", rid, "error", err)
		return vision.ExtractResponse{}, nil, &common.AIVisionError{Op: "load page image", Cause: err}
	}

	schema := vision.BuildExtractionJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt()},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": userPrompt(req)},
				{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
			}},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, status, httpErr := vision.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if httpErr != nil {
		c.log.Error("vision.extract.http_error",
			"req_id", rid, "status", status, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.ExtractResponse{}, raw, &common.AIVisionError{Op: "chat completion", Cause: httpErr}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return vision.ExtractResponse{}, raw, &common.AIVisionError{Op: "decode response", Cause: err}
	}
	if len(cc.Choices) == 0 {
		return vision.ExtractResponse{}, raw, &common.AIVisionError{Op: "decode response", Cause: fmt.Errorf("no choices in response")}
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := vision.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.LenientJSON {
			return vision.ExtractResponse{}, rawContent, &common.AIVisionError{Op: "schema validation", Cause: err}
		}
		cleaned, repaired, sErr := vision.SanitizeFields(rawContent)
		if sErr != nil {
			return vision.ExtractResponse{}, rawContent, &common.AIVisionError{Op: "sanitize response", Cause: sErr}
		}
		if vErr := vision.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("vision.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(rawContent),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return vision.ExtractResponse{}, rawContent, &common.AIVisionError{Op: "schema validation", Cause: vErr}
		}
		c.log.Warn("vision.extract.lenient_sanitize_applied",
			"req_id", rid, "repaired", repaired,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var fields vision.ExtractionFields
	if err := json.Unmarshal(rawContent, &fields); err != nil {
		return vision.ExtractResponse{}, rawContent, &common.AIVisionError{Op: "unmarshal fields", Cause: err}
	}

	c.log.Info("vision.extract.ok",
		"req_id", rid,
		"rooms", len(fields.Rooms),
		"has_envelope", fields.Envelope != nil,
		"confidence", fields.ModelConfidence,
		"total_tokens", cc.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return vision.ExtractResponse{Fields: fields, TokenCost: cc.Usage.TotalTokens}, rawContent, nil
}

func systemPrompt() string {
	parts := []string{
		"You are a residential blueprint analyst. Return ONLY JSON that matches the JSON Schema provided.",
		"Identify every habitable room on the floor plan with its name and floor area in square feet.",
		"Count exterior walls per room and note rooms over unconditioned space (garages, crawlspaces).",
		"Report building envelope properties only when the drawing states them; never guess R-values.",
		"Report a confidence in [0,1] for the extraction as a whole.",
		"Never output null. If a field is not visible on the drawing, omit it.",
	}
	return strings.Join(parts, " ")
}

func userPrompt(req vision.ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Extract the rooms and envelope from this floor-plan page.")
	if req.ExpectedRoomCount > 0 {
		fmt.Fprintf(&b, " Geometry analysis suggests roughly %d rooms.", req.ExpectedRoomCount)
	}
	if req.FloorContext != "" {
		b.WriteString("\nContext: ")
		b.WriteString(req.FloorContext)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
