package catalog

// seedMovies mirrors the prototype catalog the original app shipped with.
var seedMovies = []Movie{
	{
		ID:           "1",
		Title:        "Dune: Part Two",
		Overview:     "Paul Atreides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
		PosterPath:   "https://images.pexels.com/photos/2395249/pexels-photo-2395249.jpeg",
		BackdropPath: "https://images.pexels.com/photos/1632039/pexels-photo-1632039.jpeg",
		ReleaseDate:  "2024-03-01",
		VoteAverage:  8.5,
		Genres:       []string{"Science Fiction", "Adventure"},
		Trending:     true,
	},
	{
		ID:           "2",
		Title:        "Oppenheimer",
		Overview:     "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
		PosterPath:   "https://images.pexels.com/photos/266526/pexels-photo-266526.jpeg",
		BackdropPath: "https://images.pexels.com/photos/585759/pexels-photo-585759.jpeg",
		ReleaseDate:  "2023-07-21",
		VoteAverage:  8.3,
		Genres:       []string{"Drama", "History"},
		Trending:     true,
	},
	{
		ID:           "3",
		Title:        "Poor Things",
		Overview:     "The incredible tale about the fantastical evolution of Bella Baxter, a young woman brought back to life by the brilliant and unorthodox scientist Dr. Godwin Baxter.",
		PosterPath:   "https://images.pexels.com/photos/5417664/pexels-photo-5417664.jpeg",
		BackdropPath: "https://images.pexels.com/photos/4288235/pexels-photo-4288235.jpeg",
		ReleaseDate:  "2023-12-08",
		VoteAverage:  8.0,
		Genres:       []string{"Science Fiction", "Comedy"},
		Trending:     true,
	},
	{
		ID:           "4",
		Title:        "The Batman",
		Overview:     "When a sadistic serial killer begins murdering key political figures in Gotham, Batman is forced to investigate the city's hidden corruption.",
		PosterPath:   "https://images.pexels.com/photos/7991268/pexels-photo-7991268.jpeg",
		BackdropPath: "https://images.pexels.com/photos/1720374/pexels-photo-1720374.jpeg",
		ReleaseDate:  "2022-03-04",
		VoteAverage:  7.8,
		Genres:       []string{"Crime", "Thriller"},
		Trending:     true,
	},
	{
		ID:           "5",
		Title:        "Everything Everywhere All at Once",
		Overview:     "An aging Chinese immigrant is swept up in an insane adventure, where she alone can save the world by exploring other universes.",
		PosterPath:   "https://images.pexels.com/photos/3923549/pexels-photo-3923549.jpeg",
		BackdropPath: "https://images.pexels.com/photos/924133/pexels-photo-924133.jpeg",
		ReleaseDate:  "2022-03-25",
		VoteAverage:  8.4,
		Genres:       []string{"Science Fiction", "Comedy"},
		Trending:     true,
	},
	{
		ID:           "6",
		Title:        "Barbie",
		Overview:     "Barbie suffers a crisis that leads her to question her world and her existence.",
		PosterPath:   "https://images.pexels.com/photos/4145354/pexels-photo-4145354.jpeg",
		BackdropPath: "https://images.pexels.com/photos/3689859/pexels-photo-3689859.jpeg",
		ReleaseDate:  "2023-07-21",
		VoteAverage:  7.2,
		Genres:       []string{"Comedy", "Fantasy"},
		Trending:     true,
	},
	{
		ID:          "7",
		Title:       "Blade Runner 2049",
		Overview:    "A young blade runner's discovery of a long-buried secret leads him to track down former blade runner Rick Deckard.",
		PosterPath:  "https://images.pexels.com/photos/2599538/pexels-photo-2599538.jpeg",
		ReleaseDate: "2017-10-06",
		VoteAverage: 8.1,
		Genres:      []string{"Science Fiction", "Drama"},
	},
	{
		ID:          "8",
		Title:       "Past Lives",
		Overview:    "Two deeply connected childhood friends are wrest apart and reunite decades later for one fateful week.",
		PosterPath:  "https://images.pexels.com/photos/2774546/pexels-photo-2774546.jpeg",
		ReleaseDate: "2023-06-02",
		VoteAverage: 8.2,
		Genres:      []string{"Drama", "Romance"},
	},
	{
		ID:          "9",
		Title:       "La La Land",
		Overview:    "While navigating their careers in Los Angeles, a pianist and an actress fall in love while attempting to reconcile their aspirations.",
		PosterPath:  "https://images.pexels.com/photos/358532/pexels-photo-358532.jpeg",
		ReleaseDate: "2016-12-09",
		VoteAverage: 8.0,
		Genres:      []string{"Drama", "Music"},
	},
}
