package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrRejectedUpload    = errors.New("rejected upload")
	ErrAssetAccessDenied = errors.New("asset access denied")
	ErrAssetNotFound     = errors.New("asset not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
