package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// ImageURLValidity is how long a presigned product image URL stays usable.
const ImageURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// CatalogService serves packages. When object storage is configured,
// product images are stored as object keys and handed out as presigned GET
// URLs; otherwise the stored value is returned as is.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *CatalogService {
	return &CatalogService{db: db, repomanager: m, config: cfg}
}

func (s *CatalogService) ListPackages(ctx context.Context, f catalog.Filter) ([]models.Package, error) {
	f.Query = strings.TrimSpace(f.Query)
	f.BrandID = strings.TrimSpace(f.BrandID)

	pkgs, err := s.repomanager.Catalog(s.db).ListPackages(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error listing packages: %w", err)
	}
	if err := s.resolveImages(ctx, pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

// GetPackage returns common.ErrorNotFound for an unknown id.
func (s *CatalogService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	p, err := s.repomanager.Catalog(s.db).GetPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading package: %w", err)
	}
	pkgs := []models.Package{*p}
	if err := s.resolveImages(ctx, pkgs); err != nil {
		return nil, err
	}
	return &pkgs[0], nil
}

func (s *CatalogService) resolveImages(ctx context.Context, pkgs []models.Package) error {
	if !s.config.S3Enabled() {
		return nil
	}

	var pc *s3.PresignClient
	for i := range pkgs {
		for j := range pkgs[i].Items {
			p := &pkgs[i].Items[j].Product
			if p.Image == "" || isAbsoluteURL(p.Image) {
				continue
			}
			if pc == nil {
				var err error
				if pc, err = s.getPresignClient(ctx); err != nil {
					return fmt.Errorf("presign error: %w", err)
				}
			}
			url, err := s.presignedGetURL(ctx, pc, p.Image)
			if err != nil {
				return fmt.Errorf("presign error: %w", err)
			}
			p.Image = url
		}
	}
	return nil
}

func (s *CatalogService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *CatalogService) presignedGetURL(ctx context.Context, pc *s3.PresignClient, key string) (string, error) {
	bucket := s.config.S3Bucket
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ImageURLValidity))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
