package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/models"
)

// allowedExtensions is the upload extension whitelist, checked against the
// lower-cased extension of the client-declared file name before any bytes
// are written.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".pdf":  {},
}

// assetService is the concrete implementation of AssetService.
// It owns the full lifecycle of uploaded documents: admission of incoming
// files into a category's storage area under a generated opaque name, and
// ownership-gated retrieval of stored files.
type assetService struct {
	// assetStorage is the byte-storage area, one sub-area per category.
	assetStorage store.AssetStorage

	// memberRepository resolves the account row whose stored references
	// decide retrieval authorization.
	memberRepository store.MemberRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAssetService constructs an AssetService wired to the given storage
// backends. The returned service is safe for concurrent use.
func NewAssetService(assetStorage store.AssetStorage, memberRepository store.MemberRepository, logger *logger.Logger) AssetService {
	return &assetService{
		assetStorage:     assetStorage,
		memberRepository: memberRepository,
		logger:           logger,
	}
}

// Ingest admits one uploaded file into the given category's storage area.
//
// Admission pipeline:
//  1. Reduce the client-declared name to its base form and extract the
//     extension; anything outside the whitelist is rejected before any
//     write occurs.
//  2. Generate the stored name: a random UUID in compact hex form plus the
//     original extension. The client-declared name never influences the
//     stored name beyond the extension.
//  3. Persist the bytes under the generated name.
//  4. Sniff the persisted content; if it is neither an image nor a PDF the
//     file is removed again and the upload rejected.
//
// Returns the generated stored name or:
//   - ErrRejectedUpload if the extension or the sniffed content type is
//     not acceptable.
//   - A wrapped storage error if persisting fails.
func (a *assetService) Ingest(ctx context.Context, category models.AssetCategory, upload models.Upload) (string, error) {
	log := logger.FromContext(ctx)

	baseName := filepath.Base(upload.OriginalName)
	extension := strings.ToLower(filepath.Ext(baseName))
	if _, ok := allowedExtensions[extension]; !ok {
		log.Error().Str("original_name", upload.OriginalName).Str("category", string(category)).Msg("upload rejected: extension not allowed")
		return "", fmt.Errorf("%w: extension %q is not allowed", ErrRejectedUpload, extension)
	}

	storedName := strings.ReplaceAll(uuid.NewString(), "-", "") + extension

	if err := a.assetStorage.Save(ctx, category, storedName, upload.Content); err != nil {
		log.Err(err).Str("category", string(category)).Msg("saving uploaded file ended with error")
		return "", fmt.Errorf("saving uploaded file ended with error: %w", err)
	}

	if !acceptableContentType(upload.Content) {
		if err := a.assetStorage.Remove(ctx, category, storedName); err != nil {
			log.Err(err).Str("category", string(category)).Str("stored_name", storedName).Msg("removing rejected upload ended with error")
		}
		log.Error().Str("original_name", upload.OriginalName).Str("category", string(category)).Msg("upload rejected: content type mismatch")
		return "", fmt.Errorf("%w: content does not match an allowed type", ErrRejectedUpload)
	}

	return storedName, nil
}

// Discard removes a previously ingested file from its category's storage
// area. Used to unwind a partially completed registration.
func (a *assetService) Discard(ctx context.Context, category models.AssetCategory, storedName string) error {
	if err := a.assetStorage.Remove(ctx, category, storedName); err != nil {
		return fmt.Errorf("discarding ingested file ended with error: %w", err)
	}
	return nil
}

// Fetch streams a stored file after confirming the requesting account owns it.
//
// Ownership is re-derived on every call: the member row is loaded fresh and
// its stored reference for the category is compared to the requested name
// with exact string equality. Any mismatch, including an empty stored
// reference or a well-formed name belonging to a different account, is
// ErrAssetAccessDenied; the response never reveals whether the requested
// name exists.
//
// Only after ownership is confirmed is physical existence checked. An
// owned-but-missing file is a data-integrity fault: it is logged and
// surfaced as ErrAssetNotFound, not as an authorization failure.
//
// The caller owns the returned reader and must close it.
func (a *assetService) Fetch(ctx context.Context, memberID int64, category models.AssetCategory, requestedName string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	member, err := a.memberRepository.FindMemberByID(ctx, memberID)
	if err != nil {
		log.Err(err).Int64("member_id", memberID).Msg("member search by id failed")
		return nil, fmt.Errorf("member search by id failed: %w", err)
	}

	storedRef := member.AssetFor(category)
	if storedRef == "" || storedRef != requestedName {
		log.Error().
			Int64("member_id", memberID).
			Str("category", string(category)).
			Str("requested_name", requestedName).
			Msg("asset access denied")
		return nil, ErrAssetAccessDenied
	}

	file, err := a.assetStorage.Open(ctx, category, storedRef)
	if err != nil {
		if errors.Is(err, store.ErrAssetFileNotFound) {
			log.Error().
				Int64("member_id", memberID).
				Str("category", string(category)).
				Str("stored_name", storedRef).
				Msg("referenced asset file is missing from storage")
			return nil, ErrAssetNotFound
		}
		log.Err(err).Str("category", string(category)).Msg("opening stored file ended with error")
		return nil, fmt.Errorf("opening stored file ended with error: %w", err)
	}

	return file, nil
}

// acceptableContentType sniffs the leading bytes of an upload and reports
// whether they identify an image or a PDF.
func acceptableContentType(content []byte) bool {
	contentType := http.DetectContentType(content)
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}
