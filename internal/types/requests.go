package types

import "fmt"

// Create and update payloads. Update payloads wrap every field in Optional
// so a field left out of the body is told apart from one sent as null;
// only fields that were sent are written, and null clears the column.

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateTagRequest struct {
	Name Optional[string] `json:"name" binding:"omitempty,min=1,max=255"`
}

// Changes returns the column updates carried by the request
func (r *UpdateTagRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setChange(changes, "name", r.Name)
	return changes
}

// Validate rejects null for columns that cannot hold it
func (r *UpdateTagRequest) Validate() error {
	return notNull("name", r.Name.IsNull())
}

type CreateCuisineRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateCuisineRequest struct {
	Name Optional[string] `json:"name" binding:"omitempty,min=1,max=255"`
}

// Changes returns the column updates carried by the request
func (r *UpdateCuisineRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setChange(changes, "name", r.Name)
	return changes
}

func (r *UpdateCuisineRequest) Validate() error {
	return notNull("name", r.Name.IsNull())
}

type CreateRecipeRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Servings     *int    `json:"servings" binding:"omitempty,min=0"`
	Calories     *int    `json:"calories" binding:"omitempty,min=0"`
	Protein      *int    `json:"protein" binding:"omitempty,min=0"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	TagID        *uint   `json:"tag_id" binding:"required"`
}

type UpdateRecipeRequest struct {
	Name         Optional[string] `json:"name" binding:"omitempty,min=1,max=255"`
	Servings     Optional[int]    `json:"servings" binding:"omitempty,min=0"`
	Calories     Optional[int]    `json:"calories" binding:"omitempty,min=0"`
	Protein      Optional[int]    `json:"protein" binding:"omitempty,min=0"`
	Ingredients  Optional[string] `json:"ingredients"`
	Instructions Optional[string] `json:"instructions"`
	TagID        Optional[uint]   `json:"tag_id"`
}

// Changes returns the column updates carried by the request
func (r *UpdateRecipeRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setChange(changes, "name", r.Name)
	setChange(changes, "servings", r.Servings)
	setChange(changes, "calories", r.Calories)
	setChange(changes, "protein", r.Protein)
	setChange(changes, "ingredients", r.Ingredients)
	setChange(changes, "instructions", r.Instructions)
	setChange(changes, "tag_id", r.TagID)
	return changes
}

func (r *UpdateRecipeRequest) Validate() error {
	return notNull("name", r.Name.IsNull())
}

type CreateReviewRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	Visited   *bool   `json:"visited"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes     *string `json:"notes"`
	CuisineID *uint   `json:"cuisine_id" binding:"required"`
}

type UpdateReviewRequest struct {
	Name      Optional[string] `json:"name" binding:"omitempty,min=1,max=255"`
	Address   Optional[string] `json:"address" binding:"omitempty,max=255"`
	Visited   Optional[bool]   `json:"visited"`
	Rating    Optional[int]    `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes     Optional[string] `json:"notes"`
	CuisineID Optional[uint]   `json:"cuisine_id"`
}

// Changes returns the column updates carried by the request
func (r *UpdateReviewRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setChange(changes, "name", r.Name)
	setChange(changes, "address", r.Address)
	setChange(changes, "visited", r.Visited)
	setChange(changes, "rating", r.Rating)
	setChange(changes, "notes", r.Notes)
	setChange(changes, "cuisine_id", r.CuisineID)
	return changes
}

func (r *UpdateReviewRequest) Validate() error {
	if err := notNull("name", r.Name.IsNull()); err != nil {
		return err
	}
	return notNull("visited", r.Visited.IsNull())
}

func notNull(field string, isNull bool) error {
	if isNull {
		return fmt.Errorf("%s must not be null", field)
	}
	return nil
}
