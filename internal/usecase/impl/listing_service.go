package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "turriva/internal/delivery/context"
	"turriva/internal/domain/entity"
	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/repository"
	"turriva/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	projectRepo   repository.ProjectRepository
	productRepo   repository.ProductRepository
	storeRepo     repository.StoreRepository
	landRepo      repository.LandRepository
	propertyRepo  repository.PropertyRepository
	directoryRepo repository.DirectoryRepository
	userRepo      repository.UserRepository
	logger        *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ProjectRepo   repository.ProjectRepository
	ProductRepo   repository.ProductRepository
	StoreRepo     repository.StoreRepository
	LandRepo      repository.LandRepository
	PropertyRepo  repository.PropertyRepository
	DirectoryRepo repository.DirectoryRepository
	UserRepo      repository.UserRepository
	Logger        *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		projectRepo:   params.ProjectRepo,
		productRepo:   params.ProductRepo,
		storeRepo:     params.StoreRepo,
		landRepo:      params.LandRepo,
		propertyRepo:  params.PropertyRepo,
		directoryRepo: params.DirectoryRepo,
		userRepo:      params.UserRepo,
		logger:        params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *listingService) ListProjects(ctx context.Context, lang entity.Language) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.List(ctx, normalizeLanguage(lang))
	if err != nil {
		return nil, errors.Wrap(err, "list projects")
	}

	return projects, nil
}

func (srv *listingService) ProjectDetail(ctx context.Context, lang entity.Language, id string) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, normalizeLanguage(lang), id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find project")
	}

	return project, nil
}

// AddProject posts a job listing. The same entry is written to both language
// variants under a single id so either audience sees it immediately.
func (srv *listingService) AddProject(ctx context.Context, input usecase.AddProjectInput) (*entity.Project, error) {
	category, ok := entity.ParseProjectCategory(input.Category)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown project category")
	}

	project := &entity.Project{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Client:      input.Client,
		Budget:      input.Budget,
		Deadline:    input.Deadline,
		Category:    category,
		Description: input.Description,
		City:        input.City,
		PostedDate:  time.Now().Format(time.DateOnly),
	}

	for _, lang := range entity.Languages() {
		if err := srv.projectRepo.Add(ctx, lang, project); err != nil {
			return nil, errors.Wrap(err, "add project")
		}
	}

	srv.log(ctx).Info("Job listing posted",
		slog.String("projectID", project.ID),
		slog.String("category", string(category)),
	)

	return project, nil
}

// AddProduct lists a product under the vendor's store. Vendors without a
// store cannot list products.
func (srv *listingService) AddProduct(ctx context.Context, input usecase.AddProductInput) (*entity.Product, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if user.Role != entity.RoleVendor || user.StoreID == "" {
		return nil, domainerrors.ErrVendorWithoutStore
	}

	category, ok := entity.ParseProductCategory(input.Category)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product category")
	}
	productType := entity.ProductType(input.Type)
	if !productType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product type")
	}

	product := &entity.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		ImageURL:      input.ImageURL,
		Category:      category,
		ProductType:   productType,
		Subcategory:   input.Subcategory,
		StoreID:       user.StoreID,
		FileFormats:   input.FileFormats,
	}

	for _, lang := range entity.Languages() {
		store, err := srv.storeRepo.FindByID(ctx, lang, user.StoreID)
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrVendorWithoutStore
		}
		if err != nil {
			return nil, errors.Wrap(err, "find vendor store")
		}

		variant := *product
		variant.StoreName = store.Name
		if err := srv.productRepo.Add(ctx, lang, &variant); err != nil {
			return nil, errors.Wrap(err, "add product")
		}
	}

	srv.log(ctx).Info("Product listed",
		slog.String("productID", product.ID),
		slog.String("storeID", user.StoreID),
	)

	return product, nil
}

func (srv *listingService) ListLand(ctx context.Context, lang entity.Language) ([]*entity.LandListing, error) {
	listings, err := srv.landRepo.List(ctx, normalizeLanguage(lang))
	if err != nil {
		return nil, errors.Wrap(err, "list land listings")
	}

	return listings, nil
}

func (srv *listingService) AddLandListing(ctx context.Context, input usecase.AddLandInput) (*entity.LandListing, error) {
	if input.Area <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("area must be positive")
	}

	listing := &entity.LandListing{
		ID:           uuid.NewString(),
		OwnerName:    input.OwnerName,
		City:         input.City,
		Neighborhood: input.Neighborhood,
		Area:         input.Area,
		Description:  input.Description,
		PostedDate:   time.Now().Format(time.DateOnly),
		ImageURL:     input.ImageURL,
	}

	for _, lang := range entity.Languages() {
		if err := srv.landRepo.Add(ctx, lang, listing); err != nil {
			return nil, errors.Wrap(err, "add land listing")
		}
	}

	srv.log(ctx).Info("Land listing posted", slog.String("listingID", listing.ID))

	return listing, nil
}

func (srv *listingService) ListProperties(ctx context.Context, lang entity.Language) ([]*entity.PropertyListing, error) {
	listings, err := srv.propertyRepo.List(ctx, normalizeLanguage(lang))
	if err != nil {
		return nil, errors.Wrap(err, "list properties")
	}

	return listings, nil
}

func (srv *listingService) PropertyDetail(ctx context.Context, lang entity.Language, id string) (*usecase.PropertyDetailOutput, error) {
	lang = normalizeLanguage(lang)

	property, err := srv.propertyRepo.FindByID(ctx, lang, id)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find property")
	}

	output := &usecase.PropertyDetailOutput{Property: property}

	developer, err := srv.directoryRepo.FindProfileByID(ctx, lang, property.DeveloperID)
	if err == nil {
		output.Developer = developer
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "find developer profile")
	}

	return output, nil
}
