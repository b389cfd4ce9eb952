package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"

	"learning-portal/models"
)

// In-memory store implementations mirroring the documented semantics of
// their postgres counterparts: atomic profile apply, owner-scoped address
// updates, append/update-only address lists. They back the service and
// handler tests and any run without a database.

type InMemoryUserStore struct {
	mu     sync.Mutex
	users  map[int]*models.User
	nextID int
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func (s *InMemoryUserStore) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == identifier || u.ContactNo == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *InMemoryUserStore) ExistsByEmailOrContact(ctx context.Context, email, contactNo string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email || u.ContactNo == contactNo {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryUserStore) Create(ctx context.Context, user *models.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *user
	copied.ID = s.nextID
	s.users[copied.ID] = &copied
	s.nextID++
	return copied.ID, nil
}

type InMemoryProfileStore struct {
	mu        sync.Mutex
	users     map[int]*models.User
	addresses map[int]*models.Address
	addrOrder []int
	nextUser  int
	nextAddr  int

	// reference names used when composing the profile view
	Genders   map[int]string
	Statuses  map[int]string
	Countries map[int]string
	States    map[int]string

	// failAfter injects a failure after N address writes (-1 disables),
	// so tests can assert that a failed apply leaves no partial state.
	failAfter int
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{
		users:     make(map[int]*models.User),
		addresses: make(map[int]*models.Address),
		nextUser:  1,
		nextAddr:  1,
		Genders:   make(map[int]string),
		Statuses:  make(map[int]string),
		Countries: make(map[int]string),
		States:    make(map[int]string),
		failAfter: -1,
	}
}

func (s *InMemoryProfileStore) SeedUser(u models.User) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextUser
	s.users[u.ID] = &u
	s.nextUser++
	return u.ID
}

func (s *InMemoryProfileStore) SeedAddress(userID int, a models.Address) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextAddr
	a.UserID = userID
	s.addresses[a.ID] = &a
	s.addrOrder = append(s.addrOrder, a.ID)
	s.nextAddr++
	return a.ID
}

func (s *InMemoryProfileStore) FailAfterAddressWrites(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAfter = n
}

func (s *InMemoryProfileStore) ApplyProfileUpdate(ctx context.Context, userID int, req models.UpdateProfileRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// stage everything on copies and swap only at the end, so a failure
	// mid-list leaves the store untouched
	stagedUsers := make(map[int]*models.User, len(s.users))
	for id, u := range s.users {
		copied := *u
		stagedUsers[id] = &copied
	}
	stagedAddrs := make(map[int]*models.Address, len(s.addresses))
	for id, a := range s.addresses {
		copied := *a
		stagedAddrs[id] = &copied
	}
	stagedOrder := append([]int(nil), s.addrOrder...)
	nextAddr := s.nextAddr

	if u, ok := stagedUsers[userID]; ok {
		u.FirstName = req.FirstName
		u.LastName = req.LastName
		u.Email = req.Email
		u.ContactNo = req.ContactNo
		u.GenderID = req.GenderID
		u.DateOfBirth = req.DateOfBirth
		u.CurrentStatusID = req.CurrentStatusID
	}

	writes := 0
	for _, input := range req.Addresses {
		if s.failAfter >= 0 && writes >= s.failAfter {
			return errors.New("injected write failure")
		}
		writes++

		if input.AddressID != nil {
			// an id owned by someone else matches zero rows; not an error
			existing, ok := stagedAddrs[*input.AddressID]
			if !ok || existing.UserID != userID {
				continue
			}
			existing.Label = input.Label
			existing.DoorNo = input.DoorNo
			existing.Street = input.Street
			existing.Area = input.Area
			existing.City = input.City
			existing.Pincode = input.Pincode
			existing.CountryID = input.CountryID
			existing.StateID = input.StateID
			continue
		}

		stagedAddrs[nextAddr] = &models.Address{
			ID:        nextAddr,
			UserID:    userID,
			Label:     input.Label,
			DoorNo:    input.DoorNo,
			Street:    input.Street,
			Area:      input.Area,
			City:      input.City,
			Pincode:   input.Pincode,
			CountryID: input.CountryID,
			StateID:   input.StateID,
		}
		stagedOrder = append(stagedOrder, nextAddr)
		nextAddr++
	}

	s.users = stagedUsers
	s.addresses = stagedAddrs
	s.addrOrder = stagedOrder
	s.nextAddr = nextAddr
	return nil
}

func (s *InMemoryProfileStore) CreateProfile(ctx context.Context, req models.CreateProfileRequest, passwordHash string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:              s.nextUser,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		ContactNo:       req.ContactNo,
		GenderID:        req.GenderID,
		DateOfBirth:     req.DateOfBirth,
		CurrentStatusID: req.CurrentStatusID,
		Password:        passwordHash,
	}
	s.users[user.ID] = user
	s.nextUser++

	for _, input := range req.Addresses {
		s.addresses[s.nextAddr] = &models.Address{
			ID:        s.nextAddr,
			UserID:    user.ID,
			Label:     input.Label,
			DoorNo:    input.DoorNo,
			Street:    input.Street,
			Area:      input.Area,
			City:      input.City,
			Pincode:   input.Pincode,
			CountryID: input.CountryID,
			StateID:   input.StateID,
		}
		s.addrOrder = append(s.addrOrder, s.nextAddr)
		s.nextAddr++
	}

	return user.ID, nil
}

func (s *InMemoryProfileStore) GetProfile(ctx context.Context, userID int) (*models.ProfileView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, models.ErrNotFound
	}

	view := &models.ProfileView{
		UserID:            u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		ContactNo:         u.ContactNo,
		GenderID:          u.GenderID,
		GenderName:        s.Genders[u.GenderID],
		DateOfBirth:       u.DateOfBirth,
		CurrentStatusID:   u.CurrentStatusID,
		CurrentStatusName: s.Statuses[u.CurrentStatusID],
		Addresses:         []models.AddressView{},
	}

	for _, id := range s.addrOrder {
		a := s.addresses[id]
		if a.UserID != userID {
			continue
		}
		view.Addresses = append(view.Addresses, models.AddressView{
			Address:     *a,
			CountryName: s.Countries[a.CountryID],
			StateName:   s.States[a.StateID],
		})
	}

	return view, nil
}

type InMemoryProfilePicStore struct {
	mu     sync.Mutex
	pics   map[int]*models.ProfilePic
	nextID int
}

func NewInMemoryProfilePicStore() *InMemoryProfilePicStore {
	return &InMemoryProfilePicStore{
		pics:   make(map[int]*models.ProfilePic),
		nextID: 1,
	}
}

func (s *InMemoryProfilePicStore) GetByUser(ctx context.Context, userID int) (*models.ProfilePic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pic, ok := s.pics[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *pic
	return &copied, nil
}

func (s *InMemoryProfilePicStore) Upsert(ctx context.Context, userID int, filePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pic, ok := s.pics[userID]; ok {
		pic.FilePath = filePath
		return nil
	}
	s.pics[userID] = &models.ProfilePic{
		ID:       s.nextID,
		UserID:   userID,
		FilePath: filePath,
	}
	s.nextID++
	return nil
}

type InMemoryEducationStore struct {
	mu      sync.Mutex
	entries map[int]*models.Education
	nextID  int

	InstituteNames map[int]string
	DegreeNames    map[int]string
}

func NewInMemoryEducationStore() *InMemoryEducationStore {
	return &InMemoryEducationStore{
		entries:        make(map[int]*models.Education),
		nextID:         1,
		InstituteNames: make(map[int]string),
		DegreeNames:    make(map[int]string),
	}
}

func (s *InMemoryEducationStore) ListByUser(ctx context.Context, userID int) ([]models.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Education{}
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		copied := *e
		copied.InstituteName = s.InstituteNames[e.InstituteID]
		copied.DegreeName = s.DegreeNames[e.DegreeID]
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GraduationDate > out[j].GraduationDate
	})
	return out, nil
}

func (s *InMemoryEducationStore) Insert(ctx context.Context, userID, instituteID, degreeID int, graduationDate, location string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &models.Education{
		ID:             s.nextID,
		UserID:         userID,
		InstituteID:    instituteID,
		DegreeID:       degreeID,
		GraduationDate: graduationDate,
		Location:       location,
	}
	s.entries[e.ID] = e
	s.nextID++
	return e.ID, nil
}

func (s *InMemoryEducationStore) Update(ctx context.Context, userID int, req models.UpdateEducationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[req.ID]
	if !ok || e.UserID != userID {
		return nil
	}
	e.InstituteID = req.InstituteID
	e.DegreeID = req.DegreeID
	e.GraduationDate = req.GraduationDate
	e.Location = req.Location
	return nil
}

type InMemoryExperienceStore struct {
	mu      sync.Mutex
	entries map[int]*models.Experience
	nextID  int

	CompanyNames     map[int]string
	DesignationNames map[int]string
}

func NewInMemoryExperienceStore() *InMemoryExperienceStore {
	return &InMemoryExperienceStore{
		entries:          make(map[int]*models.Experience),
		nextID:           1,
		CompanyNames:     make(map[int]string),
		DesignationNames: make(map[int]string),
	}
}

func (s *InMemoryExperienceStore) ListByUser(ctx context.Context, userID int) ([]models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Experience{}
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		copied := *e
		copied.CompanyName = s.CompanyNames[e.CompanyID]
		copied.DesignationName = s.DesignationNames[e.DesignationID]
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].JoiningDate > out[j].JoiningDate
	})
	return out, nil
}

func (s *InMemoryExperienceStore) Insert(ctx context.Context, userID, companyID, designationID int, joiningDate, relievingDate, location string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &models.Experience{
		ID:            s.nextID,
		UserID:        userID,
		CompanyID:     companyID,
		DesignationID: designationID,
		JoiningDate:   joiningDate,
		RelievingDate: relievingDate,
		Location:      location,
	}
	s.entries[e.ID] = e
	s.nextID++
	return e.ID, nil
}

func (s *InMemoryExperienceStore) Update(ctx context.Context, userID int, req models.UpdateExperienceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[req.ID]
	if !ok || e.UserID != userID {
		return nil
	}
	e.CompanyID = req.CompanyID
	e.DesignationID = req.DesignationID
	e.JoiningDate = req.JoiningDate
	e.RelievingDate = req.RelievingDate
	e.Location = req.Location
	return nil
}

type InMemoryReferenceStore struct {
	mu sync.Mutex

	Genders      []models.Lookup
	Countries    []models.Lookup
	Statuses     []models.Lookup
	Degrees      []models.Lookup
	Designations []models.Lookup
	StateRows    []models.State
	Modules      []models.AppModule

	institutes map[string]int
	companies  map[string]int
	nextRefID  int
}

func NewInMemoryReferenceStore() *InMemoryReferenceStore {
	return &InMemoryReferenceStore{
		institutes: make(map[string]int),
		companies:  make(map[string]int),
		nextRefID:  1,
	}
}

func (s *InMemoryReferenceStore) ListGenders(ctx context.Context) ([]models.Lookup, error) {
	return s.Genders, nil
}

func (s *InMemoryReferenceStore) ListCountries(ctx context.Context) ([]models.Lookup, error) {
	return s.Countries, nil
}

func (s *InMemoryReferenceStore) ListCurrentStatuses(ctx context.Context) ([]models.Lookup, error) {
	return s.Statuses, nil
}

func (s *InMemoryReferenceStore) ListDegrees(ctx context.Context) ([]models.Lookup, error) {
	return s.Degrees, nil
}

func (s *InMemoryReferenceStore) ListDesignations(ctx context.Context) ([]models.Lookup, error) {
	return s.Designations, nil
}

func (s *InMemoryReferenceStore) ListStates(ctx context.Context, countryID int) ([]models.State, error) {
	if countryID == 0 {
		return s.StateRows, nil
	}
	out := []models.State{}
	for _, st := range s.StateRows {
		if st.CountryID == countryID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *InMemoryReferenceStore) ListAppModules(ctx context.Context) ([]models.AppModule, error) {
	return s.Modules, nil
}

func (s *InMemoryReferenceStore) FindOrCreateInstitute(ctx context.Context, name, location string) (int, error) {
	return s.findOrCreate(s.institutes, name, location)
}

func (s *InMemoryReferenceStore) FindOrCreateCompany(ctx context.Context, name, location string) (int, error) {
	return s.findOrCreate(s.companies, name, location)
}

func (s *InMemoryReferenceStore) findOrCreate(table map[string]int, name, location string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := name + "|" + location
	if id, ok := table[key]; ok {
		return id, nil
	}
	id := s.nextRefID
	table[key] = id
	s.nextRefID++
	return id, nil
}

type InMemoryCourseStore struct {
	Courses     []models.Course
	Enrollments map[int][]models.UserCourse
}

func NewInMemoryCourseStore() *InMemoryCourseStore {
	return &InMemoryCourseStore{
		Enrollments: make(map[int][]models.UserCourse),
	}
}

func (s *InMemoryCourseStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.Courses, nil
}

func (s *InMemoryCourseStore) ListByUser(ctx context.Context, userID int) ([]models.UserCourse, error) {
	enrollments, ok := s.Enrollments[userID]
	if !ok {
		return []models.UserCourse{}, nil
	}
	return enrollments, nil
}
