package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/truth-table/internal/dto"
	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/labstack/echo/v4"
)

type TruthTableRouter struct {
	e         *echo.Echo
	generator truthtable.Generator
}

func NewTruthTableRouter(e *echo.Echo, generator truthtable.Generator) *TruthTableRouter {
	return &TruthTableRouter{
		e:         e,
		generator: generator,
	}
}

func (r *TruthTableRouter) Bind() {
	r.e.GET("/truth-table", r.getHandler)
	r.e.POST("/truth-table", r.postHandler)
}

// getHandler godoc
// @Summary Generate a truth table
// @Description Evaluates the expression for every combination of its variables. Operators: && and ∧, || or ∨, ! not ¬, ⊕ xor.
// @Tags truth-table
// @Produce json
// @Param expression query string true "Propositional expression" example("(A && B) || !C")
// @Success 200 {object} dto.TruthTableResponse
// @Success 204 "Blank expression, nothing to generate"
// @Failure 400 {object} dto.ErrorResponse
// @Router /truth-table [get]
func (r *TruthTableRouter) getHandler(c echo.Context) error {
	return r.generate(c, c.QueryParam("expression"))
}

// postHandler godoc
// @Summary Generate a truth table
// @Description Same as the GET variant with the expression in a JSON body.
// @Tags truth-table
// @Accept json
// @Produce json
// @Param request body dto.TruthTableRequest true "Expression"
// @Success 200 {object} dto.TruthTableResponse
// @Success 204 "Blank expression, nothing to generate"
// @Failure 400 {object} dto.ErrorResponse
// @Router /truth-table [post]
func (r *TruthTableRouter) postHandler(c echo.Context) error {
	var req dto.TruthTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return r.generate(c, req.Expression)
}

func (r *TruthTableRouter) generate(c echo.Context, expression string) error {
	table, err := r.generator.Generate(c.Request().Context(), expression)
	if errors.Is(err, logic.ErrEmptyExpression) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTruthTableResponse(table))
}
