package types

import "time"

type UserView struct {
	Id         string    `json:"id"`
	UserId     int64     `json:"userId"`
	Username   string    `json:"username"`
	FullName   *string   `json:"fullName"`
	Avatar     *string   `json:"avatar"`
	SuperAdmin int       `json:"superAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type UserListRequest struct {
	Page     *int    `query:"page" json:"page"`
	PageSize *int    `query:"pageSize" json:"pageSize"`
	Keyword  *string `query:"keyword" json:"keyword"`
}

type UserListResponse struct {
	Items    []UserView `json:"items"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

type UserByIdRequest struct {
	Id string `query:"id" json:"id"`
}

type UserCreateRequest struct {
	UserId     int64   `json:"userId"`
	Username   string  `json:"username"`
	FullName   *string `json:"fullName"`
	Avatar     *string `json:"avatar"`
	Password   string  `json:"password"`
	SuperAdmin *bool   `json:"superAdmin"`
}

type UserUpdateRequest struct {
	Id         string  `json:"id"`
	Username   *string `json:"username"`
	FullName   *string `json:"fullName"`
	Avatar     *string `json:"avatar"`
	Password   *string `json:"password"`
	SuperAdmin *bool   `json:"superAdmin"`
}
