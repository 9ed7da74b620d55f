package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

// SessionUser 是会话令牌中携带的声明集
type SessionUser struct {
	Sub        string // 账户主键（十进制字符串）
	Username   string
	UserID     int64
	SuperAdmin int64
	Expires    int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseUser(tokenString string) (*SessionUser, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	// 映射字段，四个字段的类型必须严格匹配，否则整个令牌视为无效
	user := &SessionUser{}
	if sub, ok := claims["sub"].(string); ok {
		user.Sub = sub
	} else {
		return nil, errors.New("invalid sub claim")
	}
	if username, ok := claims["username"].(string); ok {
		user.Username = username
	} else {
		return nil, errors.New("invalid username claim")
	}
	if userID, ok := claims["userId"].(float64); ok {
		user.UserID = int64(userID)
	} else {
		return nil, errors.New("invalid userId claim")
	}
	if superAdmin, ok := claims["superAdmin"].(float64); ok {
		user.SuperAdmin = int64(superAdmin)
	} else {
		return nil, errors.New("invalid superAdmin claim")
	}
	if exp, ok := claims["exp"].(float64); ok {
		user.Expires = int64(exp)
	} else {
		return nil, errors.New("invalid exp claim")
	}

	return user, nil
}

func (j *JWT) SignToken(user *SessionUser) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"sub":        user.Sub,
		"username":   user.Username,
		"userId":     user.UserID,
		"superAdmin": user.SuperAdmin,
		"exp":        user.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
