package types

import "time"

type TagView struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TagListRequest struct {
	Page     *int    `query:"page" json:"page"`
	PageSize *int    `query:"pageSize" json:"pageSize"`
	Keyword  *string `query:"keyword" json:"keyword"`
}

type TagListResponse struct {
	Items    []TagView `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

type TagByIdRequest struct {
	Id string `query:"id" json:"id"`
}

type TagCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type TagUpdateRequest struct {
	Id          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
