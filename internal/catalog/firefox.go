package catalog

import "time"

// FirefoxRelease pairs a Firefox version with its release date.
type FirefoxRelease struct {
	Version string
	Date    time.Time
}

func ffDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FirefoxReleases is the historical Firefox release table, taken from the
// Wikipedia release history. Table order is load-bearing: the sampler treats
// the next table entry as the end of a version's release window, even where
// ESR branches make that not strictly chronological.
var FirefoxReleases = []FirefoxRelease{
	{"0.9", ffDate(2004, 6, 28)},
	{"0.9.3", ffDate(2004, 8, 4)},
	{"0.10", ffDate(2004, 9, 14)},
	{"0.10.1", ffDate(2004, 9, 14)},
	{"1.0.1", ffDate(2005, 2, 24)},
	{"1.0.2", ffDate(2005, 3, 23)},
	{"1.0.3", ffDate(2005, 4, 15)},
	{"1.0.4", ffDate(2005, 5, 11)},
	{"1.0.5", ffDate(2005, 7, 12)},
	{"1.0.6", ffDate(2005, 7, 19)},
	{"1.0.7", ffDate(2005, 9, 20)},
	{"1.0.8", ffDate(2006, 4, 13)},
	{"1.5.0.1", ffDate(2006, 2, 1)},
	{"1.5.0.2", ffDate(2006, 4, 13)},
	{"1.5.0.3", ffDate(2006, 5, 2)},
	{"1.5.0.4", ffDate(2006, 6, 1)},
	{"1.5.0.5", ffDate(2006, 7, 27)},
	{"1.5.0.6", ffDate(2006, 8, 2)},
	{"1.5.0.7", ffDate(2006, 9, 14)},
	{"1.5.0.8", ffDate(2006, 11, 7)},
	{"1.5.0.9", ffDate(2007, 3, 20)},
	{"2.0.0.1", ffDate(2006, 12, 19)},
	{"2.0.0.2", ffDate(2007, 2, 23)},
	{"2.0.0.3", ffDate(2007, 3, 20)},
	{"2.0.0.4", ffDate(2007, 5, 30)},
	{"2.0.0.5", ffDate(2007, 7, 17)},
	{"2.0.0.6", ffDate(2007, 7, 30)},
	{"2.0.0.7", ffDate(2007, 9, 18)},
	{"2.0.0.8", ffDate(2007, 10, 18)},
	{"2.0.0.9", ffDate(2007, 11, 1)},
	{"2.0.0.11", ffDate(2007, 11, 30)},
	{"2.0.0.12", ffDate(2008, 2, 7)},
	{"2.0.0.13", ffDate(2008, 3, 25)},
	{"2.0.0.14", ffDate(2008, 4, 16)},
	{"2.0.0.15", ffDate(2008, 7, 1)},
	{"2.0.0.16", ffDate(2008, 7, 15)},
	{"2.0.0.17", ffDate(2008, 9, 23)},
	{"2.0.0.18", ffDate(2008, 11, 12)},
	{"2.0.0.19", ffDate(2008, 12, 16)},
	{"3.0.1", ffDate(2008, 7, 16)},
	{"3.0.2", ffDate(2008, 9, 23)},
	{"3.0.3", ffDate(2008, 9, 26)},
	{"3.0.4", ffDate(2008, 11, 12)},
	{"3.0.5", ffDate(2008, 12, 16)},
	{"3.0.6", ffDate(2009, 2, 3)},
	{"3.0.7", ffDate(2009, 3, 4)},
	{"3.0.8", ffDate(2009, 3, 27)},
	{"3.0.9", ffDate(2009, 4, 21)},
	{"3.0.10", ffDate(2009, 4, 27)},
	{"3.0.11", ffDate(2009, 6, 11)},
	{"3.0.12", ffDate(2009, 7, 21)},
	{"3.0.13", ffDate(2009, 8, 3)},
	{"3.0.14", ffDate(2009, 9, 9)},
	{"3.0.15", ffDate(2009, 10, 27)},
	{"3.0.16", ffDate(2009, 12, 15)},
	{"3.0.17", ffDate(2010, 1, 5)},
	{"3.0.18", ffDate(2010, 2, 17)},
	{"3.0.19", ffDate(2010, 3, 30)},
	{"3.5.1", ffDate(2009, 7, 16)},
	{"3.5.2", ffDate(2009, 8, 3)},
	{"3.5.3", ffDate(2009, 9, 9)},
	{"3.5.4", ffDate(2009, 10, 27)},
	{"3.5.5", ffDate(2009, 11, 5)},
	{"3.5.6", ffDate(2009, 12, 15)},
	{"3.5.7", ffDate(2010, 1, 5)},
	{"3.5.8", ffDate(2010, 2, 17)},
	{"3.5.9", ffDate(2010, 3, 30)},
	{"3.5.10", ffDate(2010, 6, 22)},
	{"3.5.11", ffDate(2010, 7, 20)},
	{"3.5.12", ffDate(2010, 9, 7)},
	{"3.5.13", ffDate(2010, 9, 15)},
	{"3.5.14", ffDate(2010, 10, 19)},
	{"3.5.15", ffDate(2010, 10, 27)},
	{"3.5.16", ffDate(2010, 12, 9)},
	{"3.5.17", ffDate(2011, 3, 1)},
	{"3.5.18", ffDate(2011, 3, 22)},
	{"3.6.2", ffDate(2010, 3, 22)},
	{"3.6.3", ffDate(2010, 4, 1)},
	{"3.6.4", ffDate(2010, 6, 22)},
	{"3.6.6", ffDate(2010, 6, 26)},
	{"3.6.7", ffDate(2010, 7, 20)},
	{"3.6.8", ffDate(2010, 7, 23)},
	{"3.6.9", ffDate(2010, 9, 7)},
	{"3.6.10", ffDate(2010, 9, 15)},
	{"3.6.11", ffDate(2010, 10, 19)},
	{"3.6.12", ffDate(2010, 10, 27)},
	{"3.6.13", ffDate(2010, 12, 9)},
	{"3.6.14", ffDate(2011, 3, 1)},
	{"3.6.15", ffDate(2011, 3, 4)},
	{"3.6.16", ffDate(2011, 3, 22)},
	{"3.6.17", ffDate(2011, 4, 28)},
	{"3.6.18", ffDate(2011, 6, 21)},
	{"3.6.19", ffDate(2011, 7, 11)},
	{"3.6.20", ffDate(2011, 8, 16)},
	{"3.6.21", ffDate(2011, 8, 30)},
	{"3.6.22", ffDate(2011, 9, 6)},
	{"3.6.23", ffDate(2011, 9, 27)},
	{"3.6.24", ffDate(2011, 11, 8)},
	{"3.6.25", ffDate(2011, 12, 20)},
	{"3.6.26", ffDate(2012, 1, 31)},
	{"3.6.27", ffDate(2012, 2, 17)},
	{"4.0", ffDate(2011, 3, 22)},
	{"4.0.1", ffDate(2011, 4, 28)},
	{"5.0", ffDate(2011, 6, 21)},
	{"7.0", ffDate(2011, 9, 27)},
	{"8.0", ffDate(2011, 11, 8)},
	{"9.0", ffDate(2011, 12, 20)},
	{"5.0.1", ffDate(2011, 7, 11)},
	{"6.0", ffDate(2011, 8, 16)},
	{"6.0.1", ffDate(2011, 8, 30)},
	{"6.0.2", ffDate(2011, 9, 6)},
	{"7.0.1", ffDate(2011, 9, 29)},
	{"8.0.1", ffDate(2011, 11, 21)},
	{"9.0.1", ffDate(2011, 12, 21)},
	{"10.0", ffDate(2012, 1, 31)},
	{"11.0", ffDate(2012, 3, 13)},
	{"14.0.1", ffDate(2012, 7, 17)},
	{"10.0.1", ffDate(2012, 2, 10)},
	{"10.0.2", ffDate(2012, 2, 16)},
	{"10.0.3", ffDate(2012, 3, 13)},
	{"10.0.4", ffDate(2012, 4, 24)},
	{"10.0.5", ffDate(2012, 6, 5)},
	{"10.0.6", ffDate(2012, 7, 17)},
	{"10.0.7", ffDate(2012, 8, 28)},
	{"10.0.8", ffDate(2012, 10, 9)},
	{"10.0.9", ffDate(2012, 10, 12)},
	{"10.0.10", ffDate(2012, 10, 26)},
	{"10.0.11", ffDate(2012, 11, 20)},
	{"12.0", ffDate(2012, 4, 24)},
	{"13.0", ffDate(2012, 6, 5)},
	{"13.0.1", ffDate(2012, 6, 15)},
	{"15.0", ffDate(2012, 8, 28)},
	{"15.0.1", ffDate(2012, 9, 6)},
	{"16.0", ffDate(2012, 10, 9)},
	{"16.0.1", ffDate(2012, 10, 11)},
	{"16.0.2", ffDate(2012, 10, 26)},
	{"17.0", ffDate(2012, 11, 20)},
	{"17.0.1", ffDate(2012, 11, 30)},
	{"17.0.2", ffDate(2013, 1, 8)},
	{"17.0.3", ffDate(2013, 2, 19)},
	{"17.0.4", ffDate(2013, 3, 7)},
	{"17.0.5", ffDate(2013, 4, 2)},
	{"17.0.6", ffDate(2013, 5, 14)},
	{"17.0.7", ffDate(2013, 6, 25)},
	{"17.0.8", ffDate(2013, 8, 6)},
	{"17.0.9", ffDate(2013, 9, 17)},
	{"17.0.10", ffDate(2013, 10, 29)},
	{"17.0.11", ffDate(2013, 11, 15)},
	{"18.0", ffDate(2013, 1, 6)},
	{"18.0.1", ffDate(2013, 1, 18)},
	{"18.0.2", ffDate(2013, 2, 5)},
	{"19.0", ffDate(2013, 2, 19)},
	{"19.0.1", ffDate(2013, 2, 27)},
	{"19.0.2", ffDate(2013, 3, 7)},
	{"20.0", ffDate(2013, 4, 2)},
	{"20.0.1", ffDate(2013, 4, 11)},
	{"21.0", ffDate(2013, 5, 14)},
	{"22.0", ffDate(2013, 6, 25)},
	{"23.0", ffDate(2013, 8, 6)},
	{"23.0.1", ffDate(2013, 8, 17)},
	{"24.0", ffDate(2013, 9, 17)},
	{"24.1.0", ffDate(2013, 10, 29)},
	{"24.1.1", ffDate(2013, 11, 15)},
	{"24.2.0", ffDate(2013, 12, 10)},
	{"24.3.0", ffDate(2013, 12, 10)},
	{"24.4.0", ffDate(2013, 12, 10)},
	{"24.5.0", ffDate(2013, 12, 10)},
	{"24.6.0", ffDate(2013, 12, 10)},
	{"24.7.0", ffDate(2013, 12, 10)},
	{"24.8.0", ffDate(2013, 12, 10)},
	{"24.8.1", ffDate(2013, 12, 10)},
	{"25.0", ffDate(2013, 10, 29)},
	{"25.0.1", ffDate(2013, 11, 15)},
	{"26.0", ffDate(2013, 12, 10)},
	{"27.0", ffDate(2014, 2, 4)},
	{"27.0.1", ffDate(2014, 2, 14)},
	{"28.0", ffDate(2014, 3, 18)},
	{"29.0", ffDate(2014, 4, 29)},
	{"29.0.1", ffDate(2014, 5, 9)},
	{"30.0", ffDate(2014, 6, 10)},
	{"31.0", ffDate(2014, 7, 22)},
	{"31.1.0", ffDate(2014, 9, 2)},
	{"31.1.1", ffDate(2014, 9, 2)},
	{"31.2.0", ffDate(2014, 10, 14)},
	{"31.3.0", ffDate(2014, 12, 1)},
	{"31.4.0", ffDate(2015, 1, 13)},
	{"31.5.0", ffDate(2015, 2, 24)},
	{"31.5.3", ffDate(2015, 3, 21)},
	{"31.6.0", ffDate(2015, 3, 31)},
	{"31.7.0", ffDate(2015, 5, 12)},
	{"31.8.0", ffDate(2015, 7, 2)},
	{"32.0", ffDate(2014, 9, 2)},
	{"32.0.1", ffDate(2014, 9, 12)},
	{"32.0.2", ffDate(2014, 9, 18)},
	{"32.0.3", ffDate(2014, 9, 24)},
	{"33.0", ffDate(2014, 10, 14)},
	{"33.0.1", ffDate(2014, 10, 24)},
	{"33.0.2", ffDate(2014, 10, 28)},
	{"33.0.3", ffDate(2014, 11, 7)},
	{"33.1", ffDate(2014, 11, 10)},
	{"33.1.1", ffDate(2014, 11, 14)},
	{"34.0", ffDate(2014, 12, 1)},
	{"34.0.5", ffDate(2014, 12, 1)},
	{"35.0", ffDate(2015, 1, 13)},
	{"35.0.1", ffDate(2015, 1, 27)},
	{"36.0", ffDate(2015, 2, 24)},
	{"36.0.1", ffDate(2015, 3, 6)},
	{"36.0.2", ffDate(2015, 3, 16)},
	{"36.0.3", ffDate(2015, 3, 20)},
	{"36.0.4", ffDate(2015, 3, 21)},
	{"37.0", ffDate(2015, 3, 31)},
	{"37.0.1", ffDate(2015, 4, 3)},
	{"37.0.2", ffDate(2015, 4, 20)},
	{"38.0", ffDate(2015, 5, 12)},
	{"38.0.1", ffDate(2015, 5, 14)},
	{"38.1.0", ffDate(2015, 7, 2)},
	{"38.1.1", ffDate(2015, 8, 6)},
	{"38.2.0", ffDate(2015, 8, 11)},
	{"38.2.1", ffDate(2015, 8, 27)},
	{"38.3.0", ffDate(2015, 9, 22)},
	{"38.4.0", ffDate(2015, 11, 3)},
	{"38.5.0", ffDate(2015, 12, 15)},
	{"38.5.1", ffDate(2015, 12, 21)},
	{"38.5.2", ffDate(2015, 12, 22)},
	{"38.6.0", ffDate(2016, 1, 26)},
	{"38.6.1", ffDate(2016, 2, 11)},
	{"38.7.0", ffDate(2016, 3, 8)},
	{"38.7.1", ffDate(2016, 3, 16)},
	{"38.8.0", ffDate(2016, 4, 26)},
	{"38.0.5", ffDate(2015, 6, 2)},
	{"39.0", ffDate(2015, 7, 2)},
	{"39.0.3", ffDate(2015, 8, 6)},
	{"40.0", ffDate(2015, 8, 11)},
	{"40.0.2", ffDate(2015, 8, 13)},
	{"40.0.3", ffDate(2015, 8, 27)},
	{"41.0", ffDate(2015, 9, 22)},
	{"41.0.1", ffDate(2015, 9, 30)},
	{"41.0.2", ffDate(2015, 10, 15)},
	{"42.0", ffDate(2015, 11, 3)},
	{"43.0", ffDate(2015, 12, 15)},
	{"43.0.1", ffDate(2015, 12, 18)},
	{"43.0.2", ffDate(2015, 12, 22)},
	{"43.0.3", ffDate(2015, 12, 28)},
	{"43.0.4", ffDate(2016, 1, 6)},
	{"44.0", ffDate(2016, 1, 26)},
	{"44.0.1", ffDate(2016, 2, 8)},
	{"44.0.2", ffDate(2016, 2, 11)},
	{"45.0", ffDate(2016, 3, 8)},
	{"45.0.1", ffDate(2016, 3, 16)},
	{"45.0.2", ffDate(2016, 4, 12)},
	{"45.1.0", ffDate(2016, 4, 26)},
	{"45.1.1", ffDate(2016, 5, 3)},
	{"45.2.0", ffDate(2016, 6, 7)},
	{"45.3.0", ffDate(2016, 8, 2)},
	{"45.4.0", ffDate(2016, 9, 20)},
	{"45.5.0", ffDate(2016, 11, 15)},
	{"45.5.1", ffDate(2016, 11, 30)},
	{"45.6.0", ffDate(2016, 12, 13)},
	{"45.7.0", ffDate(2017, 1, 24)},
	{"45.8.0", ffDate(2017, 3, 7)},
	{"45.9.0", ffDate(2017, 4, 19)},
	{"46.0", ffDate(2016, 4, 26)},
	{"46.0.1", ffDate(2016, 5, 3)},
	{"47.0", ffDate(2016, 6, 7)},
	{"47.0.1", ffDate(2016, 6, 28)},
	{"48.0", ffDate(2016, 8, 2)},
	{"48.0.1", ffDate(2016, 8, 18)},
	{"48.0.2", ffDate(2016, 8, 24)},
	{"49.0", ffDate(2016, 8, 2)},
	{"49.0.1", ffDate(2016, 9, 23)},
	{"50.0", ffDate(2016, 11, 15)},
	{"50.0.1", ffDate(2016, 11, 28)},
	{"50.0.2", ffDate(2016, 11, 30)},
	{"51.0", ffDate(2017, 1, 24)},
	{"51.0.1", ffDate(2017, 1, 26)},
	{"52.0", ffDate(2017, 3, 7)},
	{"52.1.0", ffDate(2017, 4, 19)},
	{"52.1.1", ffDate(2017, 5, 19)},
	{"52.1.2", ffDate(2017, 5, 19)},
	{"52.2.0", ffDate(2017, 6, 13)},
	{"52.2.1", ffDate(2017, 6, 29)},
	{"52.3.0", ffDate(2017, 8, 8)},
	{"52.4.0", ffDate(2017, 9, 28)},
	{"52.4.1", ffDate(2017, 10, 9)},
	{"52.5.0", ffDate(2017, 12, 7)},
	{"52.5.3", ffDate(2017, 12, 28)},
	{"52.6.0", ffDate(2018, 1, 23)},
	{"52.7.0", ffDate(2018, 3, 13)},
	{"52.7.1", ffDate(2018, 3, 14)},
	{"52.7.2", ffDate(2018, 3, 16)},
	{"52.7.3", ffDate(2018, 3, 26)},
	{"52.7.4", ffDate(2018, 4, 30)},
	{"52.8.0", ffDate(2018, 5, 9)},
	{"52.8.1", ffDate(2018, 6, 6)},
	{"52.9.0", ffDate(2018, 6, 26)},
	{"53.0", ffDate(2017, 4, 19)},
	{"53.0.2", ffDate(2017, 5, 5)},
	{"53.0.3", ffDate(2017, 5, 19)},
	{"54.0", ffDate(2017, 6, 13)},
	{"54.0.1", ffDate(2017, 6, 29)},
	{"55.0", ffDate(2017, 8, 8)},
	{"55.0.1", ffDate(2017, 8, 10)},
	{"55.0.2", ffDate(2017, 8, 16)},
	{"55.0.3", ffDate(2017, 8, 25)},
	{"56.0", ffDate(2017, 9, 28)},
	{"56.0.1", ffDate(2017, 10, 9)},
	{"56.0.2", ffDate(2017, 10, 26)},
	{"57.0", ffDate(2017, 11, 14)},
	{"57.0.1", ffDate(2017, 11, 29)},
	{"57.0.2", ffDate(2017, 12, 7)},
	{"57.0.3", ffDate(2017, 12, 28)},
	{"57.0.4", ffDate(2018, 1, 4)},
	{"58.0", ffDate(2018, 1, 23)},
	{"58.0.1", ffDate(2018, 1, 29)},
	{"58.0.2", ffDate(2018, 2, 7)},
	{"59.0", ffDate(2018, 3, 13)},
	{"59.0.1", ffDate(2018, 3, 16)},
	{"59.0.2", ffDate(2018, 3, 26)},
	{"59.0.3", ffDate(2018, 4, 30)},
	{"60.0", ffDate(2018, 5, 9)},
	{"60.0.1", ffDate(2018, 5, 16)},
	{"60.0.2", ffDate(2018, 6, 6)},
	{"60.1.0", ffDate(2018, 6, 26)},
	{"60.2.0", ffDate(2018, 9, 5)},
	{"60.2.1", ffDate(2018, 9, 21)},
	{"60.2.2", ffDate(2018, 10, 2)},
	{"60.3.0", ffDate(2018, 10, 23)},
	{"60.4.0", ffDate(2018, 12, 11)},
	{"60.5.0", ffDate(2019, 1, 29)},
	{"60.5.1", ffDate(2019, 2, 12)},
	{"60.5.2", ffDate(2019, 2, 22)},
	{"60.6.0", ffDate(2019, 3, 19)},
	{"60.6.1", ffDate(2019, 3, 22)},
	{"60.6.2", ffDate(2019, 5, 5)},
	{"60.6.3", ffDate(2019, 5, 8)},
	{"60.7.0", ffDate(2019, 5, 21)},
	{"60.7.1", ffDate(2019, 6, 18)},
	{"60.7.2", ffDate(2019, 6, 20)},
	{"60.8.0", ffDate(2019, 7, 9)},
	{"60.9.0", ffDate(2019, 9, 3)},
	{"61.0", ffDate(2018, 6, 26)},
	{"61.0.1", ffDate(2018, 7, 5)},
	{"61.0.2", ffDate(2018, 8, 8)},
	{"62.0", ffDate(2018, 9, 5)},
	{"62.0.1", ffDate(2018, 9, 7)},
	{"62.0.2", ffDate(2018, 9, 21)},
	{"62.0.3", ffDate(2018, 10, 2)},
	{"63.0", ffDate(2018, 10, 23)},
	{"63.0.1", ffDate(2018, 10, 31)},
	{"63.0.2", ffDate(2018, 11, 7)},
	{"63.0.3", ffDate(2018, 11, 15)},
	{"64.0", ffDate(2018, 12, 11)},
	{"64.0.1", ffDate(2018, 12, 14)},
	{"64.0.2", ffDate(2019, 1, 9)},
	{"65.0", ffDate(2019, 1, 29)},
	{"65.0.1", ffDate(2019, 2, 12)},
	{"65.0.2", ffDate(2019, 2, 28)},
	{"66.0", ffDate(2019, 3, 19)},
	{"66.0.1", ffDate(2019, 3, 22)},
	{"66.0.2", ffDate(2019, 3, 27)},
	{"66.0.3", ffDate(2019, 4, 10)},
	{"66.0.4", ffDate(2019, 5, 5)},
	{"66.0.5", ffDate(2019, 5, 7)},
	{"67.0", ffDate(2019, 5, 21)},
	{"67.0.1", ffDate(2019, 6, 4)},
	{"67.0.2", ffDate(2019, 6, 11)},
	{"67.0.3", ffDate(2019, 6, 18)},
	{"67.0.4", ffDate(2019, 6, 20)},
	{"68.0", ffDate(2019, 7, 13)},
	{"68.0.1", ffDate(2019, 7, 18)},
	{"68.0.2", ffDate(2019, 8, 14)},
	{"68.1.0", ffDate(2019, 9, 3)},
	{"68.2.0", ffDate(2019, 10, 22)},
	{"68.3.0", ffDate(2019, 12, 3)},
	{"68.4.0", ffDate(2020, 1, 7)},
	{"68.4.1", ffDate(2020, 1, 8)},
	{"68.4.2", ffDate(2020, 1, 20)},
	{"68.5.0", ffDate(2020, 2, 11)},
	{"68.6.0", ffDate(2020, 3, 10)},
	{"68.6.1", ffDate(2020, 4, 3)},
	{"68.7.0", ffDate(2020, 4, 7)},
	{"68.8.0", ffDate(2020, 5, 5)},
	{"68.9.0", ffDate(2020, 6, 2)},
	{"68.10.0", ffDate(2020, 6, 30)},
	{"68.11.0", ffDate(2020, 7, 28)},
	{"68.12.0", ffDate(2020, 8, 25)},
	{"69.0", ffDate(2019, 9, 3)},
	{"69.0.1", ffDate(2019, 9, 18)},
	{"69.0.2", ffDate(2019, 10, 3)},
	{"69.0.3", ffDate(2019, 10, 10)},
	{"70.0", ffDate(2019, 10, 22)},
	{"70.0.1", ffDate(2019, 10, 31)},
	{"71.0", ffDate(2019, 12, 3)},
	{"72.0", ffDate(2020, 1, 7)},
	{"72.0.1", ffDate(2020, 1, 8)},
	{"72.0.2", ffDate(2020, 1, 20)},
	{"73.0", ffDate(2020, 2, 11)},
	{"73.0.1", ffDate(2020, 2, 18)},
	{"74.0", ffDate(2020, 3, 10)},
	{"74.0.1", ffDate(2020, 4, 3)},
	{"75.0", ffDate(2020, 4, 7)},
	{"76.0", ffDate(2020, 5, 5)},
	{"76.0.1", ffDate(2020, 5, 8)},
	{"77.0", ffDate(2020, 6, 2)},
	{"77.0.1", ffDate(2020, 6, 3)},
	{"78.0", ffDate(2020, 6, 30)},
	{"78.0.1", ffDate(2020, 7, 1)},
	{"78.0.2", ffDate(2020, 7, 9)},
	{"78.1.0", ffDate(2020, 7, 28)},
	{"78.2.0", ffDate(2020, 8, 25)},
	{"78.3.0", ffDate(2020, 9, 22)},
	{"78.3.1", ffDate(2020, 10, 1)},
	{"78.4.0", ffDate(2020, 10, 20)},
	{"78.4.1", ffDate(2020, 11, 10)},
	{"78.5.0", ffDate(2020, 11, 17)},
	{"78.6.0", ffDate(2020, 12, 15)},
	{"78.6.1", ffDate(2021, 1, 6)},
	{"79.0", ffDate(2020, 7, 28)},
	{"80.0", ffDate(2020, 8, 25)},
	{"80.0.1", ffDate(2020, 9, 1)},
	{"81.0", ffDate(2020, 9, 22)},
	{"81.0.1", ffDate(2020, 10, 1)},
	{"81.0.2", ffDate(2020, 10, 13)},
	{"82.0", ffDate(2020, 10, 20)},
	{"82.0.1", ffDate(2020, 10, 27)},
	{"82.0.2", ffDate(2020, 10, 28)},
	{"82.0.3", ffDate(2020, 11, 10)},
	{"83.0", ffDate(2020, 11, 17)},
	{"84.0", ffDate(2020, 12, 15)},
	{"84.0.1", ffDate(2020, 12, 22)},
	{"84.0.2", ffDate(2021, 1, 6)},
}
